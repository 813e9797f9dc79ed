// Package probe reads audio container headers and reports the stream
// parameters a manifest row needs. Only metadata is parsed: FLAC probing
// stops after the STREAMINFO block and WAV probing after the format chunk,
// so probing a file never decodes samples.
package probe
