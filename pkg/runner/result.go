package runner

import (
	"errors"

	"github.com/yaklabco/camelsnake/pkg/pipeline"
)

// FileOutcome is the outcome of one file.
type FileOutcome struct {
	Path string

	// Result is nil when Error is set.
	Result *pipeline.Result

	Error error
}

// Stats are aggregate counts for a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int

	// FilesChanged counts files with at least one rename, written or not.
	FilesChanged int

	// FilesModified counts files written back to disk.
	FilesModified int

	// FilesSkipped counts files changed by someone else during the run.
	FilesSkipped int

	FilesErrored int

	// Renames is the total number of identifiers renamed.
	Renames int
}

// Result is the overall runner result.
type Result struct {
	// Files are ordered by path.
	Files []FileOutcome

	Stats Stats
}

// HasErrors reports whether any file failed.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// HasChanges reports whether any identifier was renamed.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.Renames > 0
}

// HasPending reports whether renames were found that were not written.
func (r *Result) HasPending() bool {
	return r != nil && r.Stats.FilesChanged > r.Stats.FilesModified
}

// Err joins the per-file errors, or returns nil.
func (r *Result) Err() error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, f := range r.Files {
		if f.Error != nil {
			errs = append(errs, f.Error)
		}
	}
	return errors.Join(errs...)
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.Renames += outcome.Result.Count()

	if outcome.Result.Changed() {
		r.Stats.FilesChanged++
	}
	if outcome.Result.Skipped {
		r.Stats.FilesSkipped++
	}
	if outcome.Result.Written {
		r.Stats.FilesModified++
	}
}
