// Package protocol parses ASVspoof countermeasure protocol files. Each line
// carries five whitespace-separated fields describing one utterance; blank
// lines are ignored and anything else is a hard error so a truncated or
// corrupted protocol never produces a silently short manifest.
package protocol
