package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/camelsnake/pkg/pipeline"
	"github.com/yaklabco/camelsnake/pkg/runner"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"pending", ErrChangesPending, ExitPending},
		{"usage", fmt.Errorf("%w: bad flag", ErrInvalidUsage), ExitInvalidUsage},
		{"config", fmt.Errorf("%w: bad yaml", ErrConfig), ExitConfigError},
		{"io", ioError{errors.New("disk full")}, ExitIOError},
		{"other", errors.New("boom"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func changed(path string) runner.FileOutcome {
	return runner.FileOutcome{Path: path, Result: &pipeline.Result{Path: path}}
}

func failed(path string, err error) runner.FileOutcome {
	return runner.FileOutcome{Path: path, Error: err}
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	rewriteErr := fmt.Errorf("%w: line 3", pipeline.ErrRewriteFailure)
	writeErr := fmt.Errorf("%w: disk full", pipeline.ErrWriteFailure)

	tests := []struct {
		name  string
		files []runner.FileOutcome
		check bool
		want  int
	}{
		{"empty", nil, true, ExitSuccess},
		{"changes report", []runner.FileOutcome{changed("a.cc")}, false, ExitSuccess},
		{"changes check", []runner.FileOutcome{changed("a.cc")}, true, ExitPending},
		{"rewrite failure", []runner.FileOutcome{failed("a.cc", rewriteErr)}, false, ExitFailure},
		{"io failure", []runner.FileOutcome{failed("a.cc", writeErr)}, false, ExitIOError},
		{
			"mixed failures",
			[]runner.FileOutcome{failed("a.cc", rewriteErr), failed("b.cc", writeErr)},
			false, ExitFailure,
		},
		{
			"failure beats pending",
			[]runner.FileOutcome{changed("a.cc"), failed("b.cc", rewriteErr)},
			true, ExitFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := &runner.Result{Files: tt.files}
			for _, f := range tt.files {
				if f.Error != nil {
					result.Stats.FilesErrored++
				} else {
					result.Stats.FilesChanged++
					result.Stats.Renames++
				}
			}

			assert.Equal(t, tt.want, ExitCodeFromResult(result, tt.check))
		})
	}

	assert.Equal(t, ExitSuccess, ExitCodeFromResult(nil, true))
}

func TestIsSilent(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSilent(ErrChangesPending))
	assert.True(t, IsSilent(ioError{errors.Join(ErrRenameFailures, errors.New("x"))}))
	assert.False(t, IsSilent(ErrConfig))
	assert.False(t, IsSilent(nil))
}
