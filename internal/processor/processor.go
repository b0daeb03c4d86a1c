package processor

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
)

// Processor walks a directory tree and uploads every conforming image,
// strictly one at a time. Sequential by design: the result log order stays
// deterministic and the service never sees more than one request in flight.
type Processor struct {
	checker Checker
	upload  Uploader
	log     *slog.Logger
	updates chan<- ProgressUpdate
}

// New builds a Processor. updates may be nil when no progress UI is
// attached.
func New(checker Checker, upload Uploader, log *slog.Logger, updates chan<- ProgressUpdate) *Processor {
	return &Processor{
		checker: checker,
		upload:  upload,
		log:     log,
		updates: updates,
	}
}

// Run walks root depth-first and returns the result log: one entry per file
// that passed validation, in traversal order, including entries whose upload
// attempt failed (nil Result). Rejected files and directories contribute
// nothing. A directory that cannot be enumerated aborts the run.
func (p *Processor) Run(ctx context.Context, root string) ([]Entry, Summary, error) {
	summary := Summary{}
	entries, err := p.walk(ctx, root, &summary)
	if err != nil {
		return entries, summary, err
	}
	return entries, summary, nil
}

func (p *Processor) walk(ctx context.Context, path string, summary *Summary) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		// Nonexistent or unreadable node: nothing to contribute here.
		// The empty-path guard inside the checker is a narrower case.
		return nil, nil
	}

	if info.IsDir() {
		children, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		var log []Entry
		for _, child := range children {
			childLog, err := p.walk(ctx, filepath.Join(path, child.Name()), summary)
			if err != nil {
				return log, err
			}
			log = append(log, childLog...)
		}
		return log, nil
	}

	if !info.Mode().IsRegular() {
		return nil, nil
	}

	summary.Found++
	p.send(ProgressUpdate{FoundDelta: 1})

	if !p.checker.IsUploadable(path) {
		summary.Skipped++
		p.send(ProgressUpdate{SkippedDelta: 1})
		return nil, nil
	}

	result := p.upload.Upload(ctx, path)
	if result == nil {
		summary.Failed++
		p.send(ProgressUpdate{FailedDelta: 1})
	} else {
		summary.Uploaded++
		p.send(ProgressUpdate{UploadedDelta: 1})
		p.log.Info("uploaded", "path", path, "id", result.ID)
	}

	// A failed attempt still gets a log row; the report shows it blank.
	return []Entry{{Path: path, Result: result}}, nil
}

func (p *Processor) send(update ProgressUpdate) {
	if p.updates != nil {
		p.updates <- update
	}
}
