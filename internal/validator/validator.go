package validator

import (
	"log/slog"
	"os"

	"pancake/internal/config"
	"pancake/pkg/imgutil"
)

// Validator decides whether a file conforms to the upload constraints.
type Validator struct {
	cons config.Constraints
	log  *slog.Logger
}

func New(cons config.Constraints, log *slog.Logger) *Validator {
	return &Validator{cons: cons, log: log}
}

// IsUploadable reports whether the file at path is an image the service will
// accept. Checks run in order and stop at the first failure; every rejection
// is logged with the failed check so operators can see why a file was
// skipped. The predicate has no side effects beyond logging.
func (v *Validator) IsUploadable(path string) bool {
	if path == "" {
		v.log.Warn("check failed: empty path")
		return false
	}

	info, err := imgutil.Probe(path)
	if err != nil {
		v.log.Warn("check failed: not a decodable image", "path", path, "error", err)
		return false
	}

	if !v.cons.AcceptsFormat(info.Format) {
		v.log.Warn("check failed: unsupported format", "path", path, "format", info.Format)
		return false
	}

	stat, err := os.Stat(path)
	if err != nil {
		v.log.Warn("check failed: stat", "path", path, "error", err)
		return false
	}
	if stat.Size() > v.cons.MaxBytes {
		v.log.Warn("check failed: exceeds max size", "path", path, "bytes", stat.Size(), "max", v.cons.MaxBytes)
		return false
	}

	if info.Pixels() > v.cons.MaxPixels {
		v.log.Warn("check failed: exceeds max pixel count", "path", path, "pixels", info.Pixels(), "max", v.cons.MaxPixels)
		return false
	}

	if info.Width > v.cons.MaxDim || info.Height > v.cons.MaxDim {
		v.log.Warn("check failed: exceeds dimensional limit", "path", path, "width", info.Width, "height", info.Height, "max", v.cons.MaxDim)
		return false
	}

	return true
}
