// Package preflight verifies that a manifest build can run against the
// configured filesystem layout before any work starts.
//
// Checks cover the corpus data root, the protocol directory and its three
// protocol files, the per-subset audio directories, and the output and cache
// locations. Each check yields an independent Result so the CLI can render
// the whole report even when several checks fail.
package preflight
