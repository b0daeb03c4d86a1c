package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Cloudflare Images upload limits, from the service documentation.
const (
	DefaultMaxBytes  = int64(10_485_760)
	DefaultMaxDim    = 12_000
	DefaultMaxPixels = int64(100_000_000)
)

// DefaultBaseURL is the Cloudflare API endpoint prefix.
const DefaultBaseURL = "https://api.cloudflare.com"

// Constraints holds the limits an image must satisfy before upload. A value
// is built once per run and never mutated afterwards.
type Constraints struct {
	MaxBytes  int64
	MaxDim    int
	MaxPixels int64
	Formats   []string
}

// Credentials identifies the Cloudflare account. Both fields are opaque and
// must never be logged.
type Credentials struct {
	AccountID string
	Token     string
}

// DefaultConstraints returns the documented Cloudflare limits with PNG and
// JPEG accepted.
func DefaultConstraints() Constraints {
	return Constraints{
		MaxBytes:  DefaultMaxBytes,
		MaxDim:    DefaultMaxDim,
		MaxPixels: DefaultMaxPixels,
		Formats:   []string{"PNG", "JPEG"},
	}
}

// AcceptsFormat reports whether name is in the accepted-format set. Format
// names compare case-insensitively.
func (c Constraints) AcceptsFormat(name string) bool {
	for _, f := range c.Formats {
		if strings.EqualFold(f, name) {
			return true
		}
	}
	return false
}

// File is the optional TOML override file. Zero fields keep their defaults.
type File struct {
	BaseURL string `toml:"base_url"`
	Limits  struct {
		MaxBytes  int64 `toml:"max_bytes"`
		MaxDim    int   `toml:"max_dim"`
		MaxPixels int64 `toml:"max_pixels"`
	} `toml:"limits"`
	Formats []string `toml:"formats"`
}

// Load reads a TOML override file and applies it on top of the defaults,
// returning the effective constraints and base URL.
func Load(path string) (Constraints, string, error) {
	cons := DefaultConstraints()
	baseURL := DefaultBaseURL
	if path == "" {
		return cons, baseURL, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cons, baseURL, fmt.Errorf("reading config file: %w", err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return cons, baseURL, fmt.Errorf("parsing config file: %w", err)
	}

	if f.BaseURL != "" {
		baseURL = f.BaseURL
	}
	if f.Limits.MaxBytes > 0 {
		cons.MaxBytes = f.Limits.MaxBytes
	}
	if f.Limits.MaxDim > 0 {
		cons.MaxDim = f.Limits.MaxDim
	}
	if f.Limits.MaxPixels > 0 {
		cons.MaxPixels = f.Limits.MaxPixels
	}
	if len(f.Formats) > 0 {
		cons.Formats = f.Formats
	}

	return cons, baseURL, nil
}
