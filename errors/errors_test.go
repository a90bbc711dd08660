/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCommandExistsError(t *testing.T) {
	err := NewCommandExistsError("status")

	// Test error message
	expected := `command "status" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrCommandExists) {
		t.Error("CommandExistsError should match ErrCommandExists")
	}

	// Test helper function
	if !IsCommandExists(err) {
		t.Error("IsCommandExists should return true for CommandExistsError")
	}
}

func TestCommandNotFoundError(t *testing.T) {
	err := NewCommandNotFoundError("reboot")

	// Test error message
	expected := `command "reboot" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrCommandNotFound) {
		t.Error("CommandNotFoundError should match ErrCommandNotFound")
	}

	// Test helper function
	if !IsCommandNotFound(err) {
		t.Error("IsCommandNotFound should return true for CommandNotFoundError")
	}
}

func TestListFullError(t *testing.T) {
	err := NewListFullError(8)

	expected := "command list full (capacity 8)"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrListFull) {
		t.Error("ListFullError should match ErrListFull")
	}

	if !IsListFull(err) {
		t.Error("IsListFull should return true for ListFullError")
	}
}

func TestNoWriterError(t *testing.T) {
	err := NewNoWriterError()

	expected := "help listing requires a writer"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNoWriter) {
		t.Error("NoWriterError should match ErrNoWriter")
	}

	if !IsNoWriter(err) {
		t.Error("IsNoWriter should return true for NoWriterError")
	}
}

func TestWriteError(t *testing.T) {
	cause := errors.New("buffer overflow")
	err := NewWriteError(cause)

	expected := "help listing write failed: buffer overflow"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrWriteFailed) {
		t.Error("WriteError should match ErrWriteFailed")
	}

	if !IsWriteFailed(err) {
		t.Error("IsWriteFailed should return true for WriteError")
	}

	// Test unwrapping to the underlying cause
	if !errors.Is(err, cause) {
		t.Error("WriteError should unwrap to the underlying write failure")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "name",
			message:  "command name exceeds 32 bytes",
			expected: `validation failed for field "name": command name exceeds 32 bytes`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing required fields",
			expected: "validation failed: missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrInvalidInput) {
				t.Error("ValidationError should match ErrInvalidInput")
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	err := NewCommandNotFoundError("status")
	wrapped := fmt.Errorf("dispatch failed: %w", err)

	if !IsCommandNotFound(wrapped) {
		t.Error("IsCommandNotFound should see through fmt.Errorf wrapping")
	}

	var cnf *CommandNotFoundError
	if !errors.As(wrapped, &cnf) {
		t.Fatal("errors.As should recover the CommandNotFoundError")
	}
	if cnf.Name != "status" {
		t.Errorf("Expected name %q, got %q", "status", cnf.Name)
	}
}
