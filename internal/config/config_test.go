package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaults(t *testing.T) {
	cons, baseURL, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if baseURL != DefaultBaseURL {
		t.Fatalf("base URL = %s", baseURL)
	}
	if cons.MaxBytes != 10_485_760 || cons.MaxDim != 12_000 || cons.MaxPixels != 100_000_000 {
		t.Fatalf("unexpected default limits: %+v", cons)
	}
	if !reflect.DeepEqual(cons.Formats, []string{"PNG", "JPEG"}) {
		t.Fatalf("unexpected default formats: %v", cons.Formats)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pancake.toml")
	content := `
base_url = "http://localhost:8787"
formats = ["PNG", "JPEG", "WEBP"]

[limits]
max_bytes = 2048
max_dim = 512
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cons, baseURL, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if baseURL != "http://localhost:8787" {
		t.Fatalf("base URL = %s", baseURL)
	}
	if cons.MaxBytes != 2048 || cons.MaxDim != 512 {
		t.Fatalf("overrides not applied: %+v", cons)
	}
	// max_pixels untouched keeps its default.
	if cons.MaxPixels != DefaultMaxPixels {
		t.Fatalf("max pixels should keep the default, got %d", cons.MaxPixels)
	}
	if !cons.AcceptsFormat("WEBP") {
		t.Fatalf("expected WEBP in the accepted set")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}

func TestAcceptsFormatCaseInsensitive(t *testing.T) {
	cons := DefaultConstraints()
	if !cons.AcceptsFormat("png") || !cons.AcceptsFormat("Jpeg") {
		t.Fatalf("format matching should ignore case")
	}
	if cons.AcceptsFormat("TIFF") {
		t.Fatalf("TIFF should not be accepted by default")
	}
}
