package probe

import (
	"fmt"

	"github.com/mewkiz/flac"
)

// FLAC reads the STREAMINFO block of a FLAC file. flac.Open parses the
// stream signature and the first metadata block only, so this touches a few
// dozen bytes regardless of file size.
func FLAC(path string) (Info, error) {
	stream, err := flac.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("parse flac header: %w", err)
	}
	defer stream.Close()

	info := stream.Info
	if info == nil {
		return Info{}, fmt.Errorf("parse flac header: %s has no streaminfo block", path)
	}
	return Info{
		SampleRate:    int(info.SampleRate),
		Channels:      int(info.NChannels),
		Frames:        int64(info.NSamples),
		BitsPerSample: int(info.BitsPerSample),
		Encoding:      "FLAC",
	}, nil
}
