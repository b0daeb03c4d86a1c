package imgutil

import (
	"image"
	"os"
	"strings"

	// Registered so image.DecodeConfig recognizes every format a
	// constraints file may accept.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Info describes a decodable image without its pixel data.
type Info struct {
	Format string
	Width  int
	Height int
}

// Pixels returns the total pixel count.
func (i Info) Pixels() int64 {
	return int64(i.Width) * int64(i.Height)
}

// Probe decodes the header of the file at path and reports its format and
// bounds. The format name is upper-cased ("PNG", "JPEG", ...). Any file the
// registered decoders cannot parse yields an error.
func Probe(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Info{}, err
	}

	return Info{
		Format: strings.ToUpper(format),
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
