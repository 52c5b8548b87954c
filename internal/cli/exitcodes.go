package cli

import "errors"

// Exit codes for goscdoc.
const (
	// ExitSuccess indicates the page was generated.
	ExitSuccess = 0

	// ExitInvalidUsage indicates arguments were given.
	ExitInvalidUsage = 1

	// ExitConversionError indicates the document could not be converted.
	ExitConversionError = 1

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates reading stdin or writing stdout failed.
	ExitIOError = 74
)

// ExitCode maps the error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConversionFailed):
		return ExitConversionError
	case errors.Is(err, ErrIO):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
