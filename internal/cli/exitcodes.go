package cli

// Exit codes returned by flint commands.
const (
	// ExitOK means analysis ran and found nothing.
	ExitOK = 0

	// ExitIssues means analysis ran and produced findings.
	ExitIssues = 1

	// ExitError means flint itself failed (bad input, I/O error).
	ExitError = 2
)
