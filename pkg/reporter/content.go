package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/camelsnake/pkg/runner"
)

// ContentReporter writes the renamed content of every file.
type ContentReporter struct {
	opts  Options
	tally tally
	bw    *bufio.Writer
}

// NewContentReporter creates a new content reporter.
func NewContentReporter(opts Options) *ContentReporter {
	return &ContentReporter{
		opts:  opts,
		tally: newTally(opts),
		bw:    bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *ContentReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	for _, file := range result.Files {
		if file.Result != nil {
			if _, err := r.bw.Write(file.Result.Output); err != nil {
				return 0, fmt.Errorf("write content: %w", err)
			}
			if err := r.bw.Flush(); err != nil {
				return 0, fmt.Errorf("write content: %w", err)
			}
		}
		r.tally.file(file)
	}
	r.tally.hint(result)

	return result.Stats.Renames, nil
}
