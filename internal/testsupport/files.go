package testsupport

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteProtocol writes a protocol file containing the given lines, one per
// line with a trailing newline.
func WriteProtocol(t testing.TB, path string, lines ...string) {
	t.Helper()

	writeFile(t, path, []byte(strings.Join(lines, "\n")+"\n"))
}

// WriteFLAC writes a minimal valid FLAC file: the stream marker followed by a
// single STREAMINFO metadata block with the given stream parameters. No audio
// frames follow, which is enough for header probing.
func WriteFLAC(t testing.TB, path string, sampleRate, channels, bitsPerSample int, frames int64) {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("fLaC")

	// Metadata block header: last-block flag set, type 0 (STREAMINFO),
	// 24-bit length of 34 bytes.
	buf.Write([]byte{0x80, 0x00, 0x00, 34})

	var block [34]byte
	binary.BigEndian.PutUint16(block[0:2], 4096) // min block size
	binary.BigEndian.PutUint16(block[2:4], 4096) // max block size
	// Min/max frame size stay zero (unknown).

	// sample_rate(20) | channels-1(3) | bits_per_sample-1(5) | frames(36),
	// packed big-endian into eight bytes.
	packed := uint64(sampleRate)<<44 |
		uint64(channels-1)<<41 |
		uint64(bitsPerSample-1)<<36 |
		uint64(frames)&(1<<36-1)
	binary.BigEndian.PutUint64(block[10:18], packed)
	// MD5 signature stays zero (unset).

	buf.Write(block[:])
	writeFile(t, path, buf.Bytes())
}

// WriteWAV writes a minimal PCM WAVE file with a fmt chunk describing the
// given stream parameters and a zero-filled data chunk of the given frame
// count.
func WriteWAV(t testing.TB, path string, sampleRate, channels, bitsPerSample int, frames int64) {
	t.Helper()

	blockAlign := channels * bitsPerSample / 8
	dataLen := frames * int64(blockAlign)

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // integer PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	buf.Write(make([]byte, dataLen))

	writeFile(t, path, buf.Bytes())
}

func writeFile(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
