package cli

import (
	"errors"

	"github.com/yaklabco/camelsnake/pkg/pipeline"
	"github.com/yaklabco/camelsnake/pkg/runner"
)

// Exit codes for camelsnake.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates that some files could not be renamed, or another
	// general failure.
	ExitFailure = 1

	// ExitPending indicates that --check found identifiers to rename.
	ExitPending = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Error categories mapped to exit codes by ExitCode.
var (
	ErrInvalidUsage = errors.New("invalid usage")
	ErrConfig       = errors.New("configuration error")

	// ErrRenameFailures and ErrChangesPending only carry an exit status; the
	// reporter has already described them.
	ErrRenameFailures = errors.New("some files could not be renamed")
	ErrChangesPending = errors.New("identifiers would be renamed")
)

// ioError marks run failures caused by the file system.
type ioError struct{ err error }

func (e ioError) Error() string { return e.err.Error() }
func (e ioError) Unwrap() error { return e.err }

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	var ioErr ioError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrChangesPending):
		return ExitPending
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.As(err, &ioErr):
		return ExitIOError
	default:
		return ExitFailure
	}
}

// IsSilent reports whether err only signals an exit status and should not
// be logged again.
func IsSilent(err error) bool {
	return errors.Is(err, ErrChangesPending) || errors.Is(err, ErrRenameFailures)
}

// ExitCodeFromResult returns the exit code for a finished run. File failures
// take precedence over pending changes; a failure caused only by the file
// system maps to ExitIOError.
func ExitCodeFromResult(result *runner.Result, check bool) int {
	return ExitCode(resultError(result, check))
}

// resultError converts a run result into the error returned by the command.
func resultError(result *runner.Result, check bool) error {
	if result == nil {
		return nil
	}
	if result.HasErrors() {
		if allIOFailures(result) {
			return ioError{errors.Join(ErrRenameFailures, result.Err())}
		}
		return errors.Join(ErrRenameFailures, result.Err())
	}
	if check && result.HasChanges() {
		return ErrChangesPending
	}
	return nil
}

func allIOFailures(result *runner.Result) bool {
	for _, f := range result.Files {
		if f.Error == nil {
			continue
		}
		if !errors.Is(f.Error, pipeline.ErrFileNotFound) &&
			!errors.Is(f.Error, pipeline.ErrPermissionDenied) &&
			!errors.Is(f.Error, pipeline.ErrWriteFailure) {
			return false
		}
	}
	return true
}
