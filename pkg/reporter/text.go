package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/camelsnake/internal/ui/pretty"
	"github.com/yaklabco/camelsnake/pkg/runner"
)

// TextReporter writes the per-file tally and a one-line summary.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	tally  tally
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		tally:  newTally(opts),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	for _, file := range result.Files {
		r.tally.file(file)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}
	r.tally.hint(result)

	return result.Stats.Renames, nil
}
