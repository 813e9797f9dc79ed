package probe

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat reports a file extension the prober has no parser for.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Info holds the stream parameters read from an audio file header.
type Info struct {
	// SampleRate is the sampling frequency in hertz.
	SampleRate int
	// Channels is the channel count.
	Channels int
	// Frames is the total number of inter-channel samples. Zero means the
	// header does not record a length.
	Frames int64
	// BitsPerSample is the sample precision in bits.
	BitsPerSample int
	// Encoding names the sample encoding, for example FLAC or PCM_S.
	Encoding string
}

// Duration returns the stream length in seconds, or zero when the header
// carries no frame count.
func (i Info) Duration() float64 {
	if i.SampleRate <= 0 {
		return 0
	}
	return float64(i.Frames) / float64(i.SampleRate)
}

// File probes path based on its extension. Unknown extensions fail with
// ErrUnsupportedFormat.
func File(path string) (Info, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".flac":
		return FLAC(path)
	case ".wav":
		return WAV(path)
	default:
		return Info{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
