/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrCommandExists is returned when registering a name that is already taken
	ErrCommandExists = errors.New("command already exists")

	// ErrCommandNotFound is returned when a name resolves to no registered command
	ErrCommandNotFound = errors.New("command not found")

	// ErrListFull is returned when registering past the processor's fixed capacity
	ErrListFull = errors.New("command list full")

	// ErrNoWriter is returned when the help listing is requested without a writer
	ErrNoWriter = errors.New("no writer provided")

	// ErrWriteFailed is returned when a write to the output sink fails mid-listing
	ErrWriteFailed = errors.New("write failed")

	// ErrWriterFull is returned by a bounded writer that has run out of capacity
	ErrWriterFull = errors.New("writer capacity exceeded")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// CommandExistsError represents an attempt to register a duplicate command name
type CommandExistsError struct {
	Name string
}

func (e *CommandExistsError) Error() string {
	return fmt.Sprintf("command %q already exists", e.Name)
}

func (e *CommandExistsError) Is(target error) bool {
	return target == ErrCommandExists
}

// CommandNotFoundError represents a lookup of a name with no registered command
type CommandNotFoundError struct {
	Name string
}

func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("command %q not found", e.Name)
}

func (e *CommandNotFoundError) Is(target error) bool {
	return target == ErrCommandNotFound
}

// ListFullError represents a registration attempted past the fixed capacity
type ListFullError struct {
	Capacity int
}

func (e *ListFullError) Error() string {
	return fmt.Sprintf("command list full (capacity %d)", e.Capacity)
}

func (e *ListFullError) Is(target error) bool {
	return target == ErrListFull
}

// NoWriterError represents a help listing requested without an output sink
type NoWriterError struct{}

func (e *NoWriterError) Error() string {
	return "help listing requires a writer"
}

func (e *NoWriterError) Is(target error) bool {
	return target == ErrNoWriter
}

// WriteError represents a failed write to the output sink. Output written
// before the failure is not retracted; the sink reflects the partial listing.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("help listing write failed: %v", e.Err)
}

func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailed
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewCommandExistsError creates a new CommandExistsError
func NewCommandExistsError(name string) error {
	return &CommandExistsError{Name: name}
}

// NewCommandNotFoundError creates a new CommandNotFoundError
func NewCommandNotFoundError(name string) error {
	return &CommandNotFoundError{Name: name}
}

// NewListFullError creates a new ListFullError
func NewListFullError(capacity int) error {
	return &ListFullError{Capacity: capacity}
}

// NewNoWriterError creates a new NoWriterError
func NewNoWriterError() error {
	return &NoWriterError{}
}

// NewWriteError creates a new WriteError wrapping the underlying write failure
func NewWriteError(err error) error {
	return &WriteError{Err: err}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsCommandExists checks if an error is a duplicate command error
func IsCommandExists(err error) bool {
	return errors.Is(err, ErrCommandExists)
}

// IsCommandNotFound checks if an error is a command not found error
func IsCommandNotFound(err error) bool {
	return errors.Is(err, ErrCommandNotFound)
}

// IsListFull checks if an error is a capacity error
func IsListFull(err error) bool {
	return errors.Is(err, ErrListFull)
}

// IsNoWriter checks if an error is a missing writer error
func IsNoWriter(err error) bool {
	return errors.Is(err, ErrNoWriter)
}

// IsWriteFailed checks if an error is a sink write error
func IsWriteFailed(err error) bool {
	return errors.Is(err, ErrWriteFailed)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
