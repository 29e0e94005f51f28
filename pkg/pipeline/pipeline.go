// Package pipeline runs the rewrite engine over one file and writes the
// result back safely.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/camelsnake/internal/logging"
	"github.com/yaklabco/camelsnake/pkg/config"
	"github.com/yaklabco/camelsnake/pkg/diff"
	"github.com/yaklabco/camelsnake/pkg/fsutil"
	"github.com/yaklabco/camelsnake/pkg/rewrite"
)

// Error categories for errors.Is.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrRewriteFailure indicates the engine rejected a line.
	ErrRewriteFailure = errors.New("rewrite failure")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// SkipModified is the skip reason for files changed while being processed.
const SkipModified = "file modified during processing"

// Result is the outcome of processing one file.
type Result struct {
	Path string

	// Rewrite holds the per-line results.
	Rewrite *rewrite.FileResult

	// Original is the content as read.
	Original []byte

	// Output is the normalized, rewritten content. It is set even when nothing
	// was renamed.
	Output []byte

	// Diff is set in dry-run mode, or when WantDiff is requested, for files
	// with renames.
	Diff *diff.Diff

	Written       bool
	BackupCreated bool
	Skipped       bool
	SkipReason    string
}

// Count returns the number of renames.
func (r *Result) Count() int {
	if r == nil || r.Rewrite == nil {
		return 0
	}
	return r.Rewrite.Count
}

// Changed reports whether any identifier was renamed.
func (r *Result) Changed() bool {
	return r.Count() > 0
}

// Summary returns a short human-readable status.
func (r *Result) Summary() string {
	switch {
	case r.Skipped:
		return "skipped: " + r.SkipReason
	case r.Written && r.BackupCreated:
		return "rewritten (backup created)"
	case r.Written:
		return "rewritten"
	case r.Changed():
		return "changes pending"
	default:
		return "ok"
	}
}

// Options controls pipeline behavior.
type Options struct {
	// Rewrite writes renamed content back to disk.
	Rewrite bool

	// DryRun produces a diff instead of writing.
	DryRun bool

	// WantDiff produces a diff even when not in dry-run mode.
	WantDiff bool

	Backup fsutil.Backup

	// StrictRaceDetection re-hashes the file before writing. When false only
	// mod time and size are compared.
	StrictRaceDetection bool
}

// DefaultOptions returns options that report without writing.
func DefaultOptions() Options {
	return Options{
		Backup:              fsutil.DefaultBackup(),
		StrictRaceDetection: true,
	}
}

// OptionsFromConfig builds Options from the merged configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return DefaultOptions()
	}
	return Options{
		Rewrite:  cfg.Rewrite,
		DryRun:   cfg.DryRun,
		WantDiff: cfg.Format == config.FormatDiff,
		Backup: fsutil.Backup{
			Enabled: cfg.BackupsEnabled(),
			Mode:    fsutil.BackupMode(cfg.Backups.Mode),
		},
		StrictRaceDetection: true,
	}
}

// Pipeline processes files with a rewrite engine.
type Pipeline struct {
	Engine *rewrite.Engine
}

// New returns a Pipeline using engine.
func New(engine *rewrite.Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile reads path, rewrites it, and writes it back when requested.
//
// The steps are:
//  1. Read and hash the file.
//  2. Split into lines and rewrite them.
//  3. Stop if nothing was renamed or writing was not requested.
//  4. In dry-run mode, build a diff and stop.
//  5. Skip the file if it changed since it was read.
//  6. Create a backup if enabled.
//  7. Write the new content atomically, keeping the file mode.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, opts Options) (*Result, error) {
	original, snap, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result, err := p.ProcessContent(ctx, path, original, opts)
	if err != nil {
		return nil, err
	}

	if !result.Changed() || !opts.Rewrite || opts.DryRun {
		return result, nil
	}

	verify := fsutil.VerifyHash
	if !opts.StrictRaceDetection {
		verify = fsutil.VerifyStat
	}
	modified, err := snap.Changed(ctx, verify)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		logging.FromContext(ctx).Warn("file changed while processing, not rewritten")
		result.Skipped = true
		result.SkipReason = SkipModified
		return result, nil
	}

	if opts.Backup.Enabled {
		created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, path, result.Output, snap.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	logging.FromContext(ctx).Debug("rewrote file",
		logging.FieldRenames, result.Count(),
		"backup", result.BackupCreated,
	)

	return result, nil
}

// ProcessContent rewrites in-memory content without touching the file system.
func (p *Pipeline) ProcessContent(ctx context.Context, path string, content []byte, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("processing cancelled: %w", err)
	}

	fileResult, err := p.Engine.RewriteLines(SplitLines(content))
	if err != nil {
		var lineErr *rewrite.LineError
		if errors.As(err, &lineErr) {
			lineErr.Path = path
		}
		return nil, fmt.Errorf("%w: %w", ErrRewriteFailure, err)
	}

	result := &Result{
		Path:     path,
		Rewrite:  fileResult,
		Original: content,
		Output:   JoinLines(fileResult.Text()),
	}

	if result.Changed() && (opts.DryRun || opts.WantDiff) {
		result.Diff = diff.Generate(path, content, result.Output)
	}

	return result, nil
}

func categorizeError(err error) error {
	switch {
	case errors.Is(err, fsutil.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fsutil.ErrPermissionDenied):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}

// IsPipelineError reports whether err belongs to one of the pipeline categories.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrRewriteFailure) ||
		errors.Is(err, ErrWriteFailure)
}
