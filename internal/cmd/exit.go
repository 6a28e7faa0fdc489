package cmd

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred,
	// including an artifact write failure.
	ExitGeneralError = 1

	// ExitLintError indicates vet found order violations.
	ExitLintError = 2

	// ExitNotFound indicates a project root or config file was not found.
	ExitNotFound = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitLintError:
		return "Lint Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
