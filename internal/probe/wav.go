package probe

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// WAV reads the RIFF format chunk of a WAVE file and derives the frame count
// from the PCM chunk length.
func WAV(path string) (Info, error) {
	file, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open wav: %w", err)
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	decoder.ReadInfo()
	if err := decoder.Err(); err != nil {
		return Info{}, fmt.Errorf("parse wav header: %w", err)
	}
	if !decoder.IsValidFile() {
		return Info{}, fmt.Errorf("parse wav header: %s is not a valid wave file", path)
	}

	encoding, err := wavEncoding(decoder.WavAudioFormat, decoder.BitDepth)
	if err != nil {
		return Info{}, fmt.Errorf("parse wav header: %s: %w", path, err)
	}

	frameBytes := int64(decoder.NumChans) * int64(decoder.BitDepth/8)
	if frameBytes == 0 {
		return Info{}, fmt.Errorf("parse wav header: %s declares a zero-size frame", path)
	}
	if err := decoder.FwdToPCM(); err != nil {
		return Info{}, fmt.Errorf("locate wav pcm chunk: %w", err)
	}

	return Info{
		SampleRate:    int(decoder.SampleRate),
		Channels:      int(decoder.NumChans),
		Frames:        decoder.PCMLen() / frameBytes,
		BitsPerSample: int(decoder.BitDepth),
		Encoding:      encoding,
	}, nil
}

// wavEncoding maps a RIFF audio format tag to an encoding name. Unsigned
// 8-bit and signed wider PCM are distinguished the way WAVE files store them.
func wavEncoding(format, bitDepth uint16) (string, error) {
	switch format {
	case 1: // integer PCM
		if bitDepth == 8 {
			return "PCM_U", nil
		}
		return "PCM_S", nil
	case 3: // IEEE float
		return "PCM_F", nil
	case 6:
		return "ALAW", nil
	case 7:
		return "ULAW", nil
	default:
		return "", fmt.Errorf("unsupported wav audio format %d", format)
	}
}
