package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/camelsnake/pkg/runner"
)

// jsonVersion is the schema version of JSONOutput.
const jsonVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path    string       `json:"path"`
	Count   int          `json:"count"`
	Renames []JSONRename `json:"renames"`
	Written bool         `json:"written,omitempty"`
	Backup  bool         `json:"backup,omitempty"`
	Skipped string       `json:"skipped,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// JSONRename is one renamed identifier.
type JSONRename struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"` // 1-based, in runes
	Old     string `json:"old"`
	New     string `json:"new"`
	Pattern string `json:"pattern"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked  int `json:"filesChecked"`
	FilesChanged  int `json:"filesChanged"`
	FilesModified int `json:"filesModified"`
	FilesSkipped  int `json:"filesSkipped"`
	FilesErrored  int `json:"filesErrored"`
	Renames       int `json:"renames"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.Renames, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonVersion,
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	output.Summary = JSONSummary{
		FilesChecked:  result.Stats.FilesProcessed,
		FilesChanged:  result.Stats.FilesChanged,
		FilesModified: result.Stats.FilesModified,
		FilesSkipped:  result.Stats.FilesSkipped,
		FilesErrored:  result.Stats.FilesErrored,
		Renames:       result.Stats.Renames,
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:    r.opts.displayPath(file.Path),
			Renames: make([]JSONRename, 0),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}

		if res := file.Result; res != nil {
			fileResult.Count = res.Count()
			fileResult.Written = res.Written
			fileResult.Backup = res.BackupCreated
			fileResult.Skipped = res.SkipReason

			if res.Rewrite != nil {
				for i, line := range res.Rewrite.Lines {
					for _, rn := range line.Renames {
						fileResult.Renames = append(fileResult.Renames, JSONRename{
							Line:    i + 1,
							Column:  rn.Column + 1,
							Old:     rn.Old,
							New:     rn.New,
							Pattern: rn.Pattern.String(),
						})
					}
				}
			}
		}

		output.Files = append(output.Files, fileResult)
	}

	return output
}
