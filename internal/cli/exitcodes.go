package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: database errors, load failures, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: provider, receiver, listing or claim IDs that don't exist.
	ExitNotFound = 3

	// ExitConstraint indicates a referential constraint rejected the
	// operation: a missing foreign key on insert/update, or a delete
	// blocked by dependent rows.
	ExitConstraint = 4

	// ExitValidation indicates a validation error.
	// Use for: empty required fields, negative quantity, unknown status.
	ExitValidation = 5
)
