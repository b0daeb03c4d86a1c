package processor

import (
	"context"

	"pancake/internal/uploader"
)

// Checker is the validation predicate applied to every regular file.
type Checker interface {
	IsUploadable(path string) bool
}

// Uploader performs a single-file upload. A nil result means the attempt
// happened but produced nothing usable.
type Uploader interface {
	Upload(ctx context.Context, path string) *uploader.Result
}

// Entry is one row of the run's result log: a file that passed validation
// and the outcome of its upload attempt. Result is nil when the upload
// failed.
type Entry struct {
	Path   string
	Result *uploader.Result
}

// Summary aggregates the run for the end-of-run report.
type Summary struct {
	Found    int
	Uploaded int
	Skipped  int
	Failed   int
}

// ProgressUpdate carries counter deltas to the progress UI.
type ProgressUpdate struct {
	FoundDelta    int
	UploadedDelta int
	SkippedDelta  int
	FailedDelta   int
}
