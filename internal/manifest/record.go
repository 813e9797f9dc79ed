package manifest

import (
	"strconv"
	"strings"

	"github.com/Daisywait/AntiDeepfake/internal/corpus"
)

// Sentinel values recorded when an utterance's audio file is absent.
const (
	missingNumeric = -1
	missingText    = ""
)

// Record is one manifest row: a protocol entry merged with the audio
// properties probed from its file. Numeric fields hold -1 and text fields ""
// when the audio file was missing.
type Record struct {
	ID            string
	Label         corpus.Label
	Duration      float64
	SampleRate    int
	Path          string
	Attack        string
	Speaker       string
	Subset        corpus.Subset
	Channels      int
	Encoding      string
	BitsPerSample int
	Language      string
}

// Header returns the fixed manifest column order.
func Header() []string {
	return []string{
		"ID", "Label", "Duration", "SampleRate", "Path", "Attack",
		"Speaker", "Proportion", "AudioChannel", "AudioEncoding",
		"AudioBitSample", "Language",
	}
}

func (r Record) csvRow() []string {
	return []string{
		r.ID,
		string(r.Label),
		formatDuration(r.Duration),
		strconv.Itoa(r.SampleRate),
		r.Path,
		r.Attack,
		r.Speaker,
		string(r.Subset),
		strconv.Itoa(r.Channels),
		r.Encoding,
		strconv.Itoa(r.BitsPerSample),
		r.Language,
	}
}

// formatDuration renders a duration that was already rounded to two decimal
// places. Integral values keep one decimal digit so a two-second clip prints
// as 2.0; the missing-file sentinel prints as a bare -1.
func formatDuration(seconds float64) string {
	if seconds == missingNumeric {
		return "-1"
	}
	text := strconv.FormatFloat(seconds, 'f', -1, 64)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}
