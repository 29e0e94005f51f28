package reporter

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter receives the per-file tally, file errors and hints
	// (typically os.Stderr).
	ErrorWriter io.Writer

	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// ShowTally writes "path count: N" for every processed file.
	ShowTally bool

	// Rewrite reports that files were written; the rewrite hint is
	// suppressed.
	Rewrite bool

	// Compact uses minified JSON.
	Compact bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, the process working directory is used.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      FormatText,
		Color:       "auto",
		ShowSummary: true,
		ShowTally:   true,
	}
}

// displayPath makes path relative to the working directory. If that
// needs too many "../" traversals the path is kept as-is.
func (o Options) displayPath(path string) string {
	if !filepath.IsAbs(path) {
		return filepath.ToSlash(path)
	}
	base := o.WorkingDir
	if base == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return path
		}
		base = cwd
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.Count(rel, "..") > 2 {
		return path
	}
	return filepath.ToSlash(rel)
}
