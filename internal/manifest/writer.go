package manifest

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/Daisywait/AntiDeepfake/internal/fileutil"
)

// WriteCSV serializes records to path in manifest column order, replacing
// any existing file. The write goes through a temp file and a rename so a
// failed run never leaves a torn manifest behind.
func WriteCSV(path string, records []Record) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(Header()); err != nil {
		return fmt.Errorf("write manifest header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(record.csvRow()); err != nil {
			return fmt.Errorf("write manifest row %s: %w", record.ID, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush manifest: %w", err)
	}

	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}
