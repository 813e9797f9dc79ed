package protocol

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// fieldCount is the number of whitespace-separated fields on a protocol line:
// speaker, utterance ID, an unused column, attack ID, and key label.
const fieldCount = 5

// Entry is one parsed protocol line.
type Entry struct {
	// Speaker is the speaker identifier, for example LA_0039.
	Speaker string
	// UtteranceID names the audio file without its extension.
	UtteranceID string
	// Unused carries the protocol's placeholder column, normally "-".
	Unused string
	// Attack is the spoofing system identifier, or "-" for bonafide speech.
	Attack string
	// Label is the raw key label, "bonafide" or "spoof".
	Label string
}

// ReadFile parses a protocol file and returns its entries in file order.
// Blank lines are skipped; any other line that does not have exactly five
// fields fails with the offending line number.
func ReadFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open protocol: %w", err)
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != fieldCount {
			return nil, fmt.Errorf("parse protocol %s:%d: expected %d fields, got %d", path, lineNo, fieldCount, len(fields))
		}
		entries = append(entries, Entry{
			Speaker:     fields[0],
			UtteranceID: fields[1],
			Unused:      fields[2],
			Attack:      fields[3],
			Label:       fields[4],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read protocol %s: %w", path, err)
	}
	return entries, nil
}
