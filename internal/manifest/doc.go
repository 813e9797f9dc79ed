// Package manifest builds the flat CSV metadata table for a speech corpus.
//
// A Builder walks the corpus protocol files in order, enriches every entry
// with audio header properties probed from the matching FLAC file, and
// serializes the accumulated records once at the end. Enrichment runs on a
// bounded worker pool and results are joined by entry index, so row order
// always matches the protocol files regardless of scheduling. A missing
// audio file never drops a row; the row keeps sentinel values instead.
package manifest
