package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/camelsnake/internal/ui/pretty"
	"github.com/yaklabco/camelsnake/pkg/runner"
)

// EchoReporter writes every processed line before and after renaming.
type EchoReporter struct {
	opts   Options
	styles *pretty.Styles
	tally  tally
	bw     *bufio.Writer
}

// NewEchoReporter creates a new echo reporter.
func NewEchoReporter(opts Options) *EchoReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &EchoReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		tally:  newTally(opts),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *EchoReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	for _, file := range result.Files {
		if file.Result != nil && file.Result.Rewrite != nil {
			fmt.Fprintln(r.bw)
			for _, line := range file.Result.Rewrite.Lines {
				fmt.Fprint(r.bw, r.styles.FormatEcho(line.Original, line.Text, line.Mode))
			}
			// Keep the tally after its file's lines.
			if err := r.bw.Flush(); err != nil {
				return 0, fmt.Errorf("write echo: %w", err)
			}
		}
		r.tally.file(file)
	}
	r.tally.hint(result)

	return result.Stats.Renames, nil
}
