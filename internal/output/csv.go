// Package output serializes extracted rows.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dgallion1/regextract/internal/document"
)

// DefaultFilename is used when the output path names a directory.
const DefaultFilename = "sentences.csv"

// WriteCSV writes a header row followed by one record per row.
func WriteCSV(w io.Writer, rows []document.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(document.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.CELEX,
			r.Sentence,
			r.Deontic,
			strconv.Itoa(r.WordCount),
			strconv.Itoa(r.SentCount),
			string(r.Format),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ResolvePath maps an existing directory to DefaultFilename inside it and
// returns any other path unchanged.
func ResolvePath(out string) string {
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, DefaultFilename)
	}
	return out
}

// WriteFile writes rows as CSV to path, replacing any existing file.
func WriteFile(path string, rows []document.Row) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	return WriteCSV(f, rows)
}
