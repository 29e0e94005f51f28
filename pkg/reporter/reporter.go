// Package reporter writes rename results in the supported output formats.
package reporter

import (
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/camelsnake/internal/ui/pretty"
	"github.com/yaklabco/camelsnake/pkg/runner"
)

// Reporter formats and writes rename results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of renames reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	defaults := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = defaults.Writer
	}
	if opts.ErrorWriter == nil {
		opts.ErrorWriter = defaults.ErrorWriter
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatEcho:
		return NewEchoReporter(opts), nil
	case FormatContent:
		return NewContentReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// tally writes the per-file count lines and file errors shared by the
// line-oriented reporters.
type tally struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

func newTally(opts Options) tally {
	return tally{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.ErrorWriter)),
		out:    opts.ErrorWriter,
	}
}

// file writes the tally line for one outcome.
func (t tally) file(file runner.FileOutcome) {
	path := t.opts.displayPath(file.Path)
	switch {
	case file.Error != nil:
		fmt.Fprintf(t.out, "%s: %s\n",
			t.styles.FilePath.Render(path),
			t.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
		)
	case file.Result == nil:
	case file.Result.Skipped:
		fmt.Fprintf(t.out, "%s: %s\n",
			t.styles.FilePath.Render(path),
			t.styles.Warning.Render("skipped: "+file.Result.SkipReason),
		)
	case t.opts.ShowTally:
		fmt.Fprintln(t.out, t.styles.FormatFileCount(path, file.Result.Count()))
	}
}

// hint writes the rewrite hint when nothing was written.
func (t tally) hint(result *runner.Result) {
	if t.opts.Rewrite || result == nil || len(result.Files) == 0 {
		return
	}
	fmt.Fprint(t.out, "\n"+t.styles.FormatHint())
}
