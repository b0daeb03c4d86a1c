package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"pancake/internal/processor"
	"pancake/internal/uploader"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	return rows
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.csv")

	entries := []processor.Entry{
		{
			Path: filepath.Join(dir, "hero.png"),
			Result: &uploader.Result{
				Success:  true,
				ID:       "abc",
				Uploaded: "2024-01-01",
				Variants: []string{},
			},
		},
		{Path: filepath.Join(dir, "broken.png"), Result: nil},
	}

	if err := WriteCSV(out, entries); err != nil {
		t.Fatalf("write: %v", err)
	}

	rows := readRows(t, out)
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}

	if !reflect.DeepEqual(rows[0], []string{"filename", "id", "upload", "varients"}) {
		t.Fatalf("unexpected header: %v", rows[0])
	}

	abs, _ := filepath.Abs(filepath.Join(dir, "hero.png"))
	if !reflect.DeepEqual(rows[1], []string{abs, "abc", "2024-01-01", "[]"}) {
		t.Fatalf("unexpected success row: %v", rows[1])
	}

	if rows[2][1] != "" || rows[2][2] != "" || rows[2][3] != "" {
		t.Fatalf("failed-upload row should have blank fields: %v", rows[2])
	}
	if rows[2][0] == "" {
		t.Fatalf("failed-upload row still needs its filename: %v", rows[2])
	}
}

func TestWriteCSVVariantList(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.csv")

	entries := []processor.Entry{{
		Path: filepath.Join(dir, "hero.png"),
		Result: &uploader.Result{
			Success:  true,
			ID:       "abc",
			Uploaded: "2024-01-01",
			Variants: []string{"https://example.com/thumb", "https://example.com/full"},
		},
	}}

	if err := WriteCSV(out, entries); err != nil {
		t.Fatalf("write: %v", err)
	}

	rows := readRows(t, out)
	want := `["https://example.com/thumb","https://example.com/full"]`
	if rows[1][3] != want {
		t.Fatalf("varients cell = %q, want %q", rows[1][3], want)
	}
}

func TestWriteCSVEmptyLog(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.csv")
	if err := WriteCSV(out, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	rows := readRows(t, out)
	if len(rows) != 1 {
		t.Fatalf("expected only the header, got %d rows", len(rows))
	}
}
