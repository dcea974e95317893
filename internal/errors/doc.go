// Package errors provides error handling conventions for the dtopr CLI.
//
// It re-exports the wrapping helpers from github.com/cockroachdb/errors,
// defines sentinel errors for common failure conditions, an ExitError type
// for CLI exit code handling, and exit code constants following standard
// Unix conventions.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, interrupt, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports [errors.Is] and [errors.As]:
//
//	err := dtoprerrors.NewSystemError(err, "Check that the directory is writable")
//	os.Exit(dtoprerrors.ExitCode(err))
package errors
