/*
Package errors provides semantic error types for the cmdproc library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrCommandExists   = errors.New("command already exists")
	    ErrCommandNotFound = errors.New("command not found")
	    ErrListFull        = errors.New("command list full")
	    ErrNoWriter        = errors.New("no writer provided")
	    ErrWriteFailed     = errors.New("write failed")
	    ErrWriterFull      = errors.New("writer capacity exceeded")
	    ErrInvalidInput    = errors.New("invalid input")
	)

Usage:

	// Check error type
	if _, err := proc.Dispatch("status", out); err != nil {
	    if errors.IsCommandNotFound(err) {
	        // Handle unknown command
	        return fmt.Errorf("no such command %q", "status")
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewCommandNotFoundError("status")
	err := errors.NewListFullError(8)
	err := errors.NewValidationError("name", "command name exceeds 32 bytes")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
