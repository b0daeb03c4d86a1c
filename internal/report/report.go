package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pancake/internal/processor"
)

var header = []string{"filename", "id", "upload", "varients"}

// WriteCSV serializes the run's result log to path. Entries whose upload
// attempt failed get a row with the filename and every other column blank.
func WriteCSV(path string, entries []processor.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}

	for _, entry := range entries {
		abs, err := filepath.Abs(entry.Path)
		if err != nil {
			abs = entry.Path
		}

		row := []string{abs, "", "", ""}
		if entry.Result != nil {
			row[1] = entry.Result.ID
			row[2] = entry.Result.Uploaded
			row[3] = renderVariants(entry.Result.Variants)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// renderVariants keeps the list readable in a single CSV cell; an empty
// list renders as "[]".
func renderVariants(variants []string) string {
	if variants == nil {
		variants = []string{}
	}
	b, err := json.Marshal(variants)
	if err != nil {
		return ""
	}
	return string(b)
}
