/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmdproc

import (
	"testing"

	"github.com/suparena/cmdproc/errors"
)

func TestBoundedWriter(t *testing.T) {
	t.Run("WriteWithinCapacity", func(t *testing.T) {
		w := NewBoundedWriter(16)

		n, err := w.Write([]byte("hello"))
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if n != 5 {
			t.Fatalf("Expected 5 bytes written, got %d", n)
		}
		if w.String() != "hello" {
			t.Fatalf("Expected %q, got %q", "hello", w.String())
		}
		if w.Len() != 5 || w.Cap() != 16 {
			t.Fatalf("Unexpected Len/Cap: %d/%d", w.Len(), w.Cap())
		}
	})

	t.Run("OverflowKeepsPrefix", func(t *testing.T) {
		w := NewBoundedWriter(4)

		n, err := w.Write([]byte("overflow"))
		if err != errors.ErrWriterFull {
			t.Fatalf("Expected ErrWriterFull, got %v", err)
		}
		if n != 4 {
			t.Fatalf("Expected 4 bytes accepted, got %d", n)
		}
		if w.String() != "over" {
			t.Fatalf("Expected partial write %q, got %q", "over", w.String())
		}
	})

	t.Run("ExactFit", func(t *testing.T) {
		w := NewBoundedWriter(4)

		if _, err := w.Write([]byte("full")); err != nil {
			t.Fatalf("Exact-fit write failed: %v", err)
		}

		// A subsequent write has no room at all.
		n, err := w.Write([]byte("x"))
		if err != errors.ErrWriterFull {
			t.Fatalf("Expected ErrWriterFull, got %v", err)
		}
		if n != 0 {
			t.Fatalf("Expected 0 bytes accepted, got %d", n)
		}
	})

	t.Run("Reset", func(t *testing.T) {
		w := NewBoundedWriter(8)

		if _, err := w.Write([]byte("data")); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		w.Reset()
		if w.Len() != 0 {
			t.Fatalf("Expected empty writer after Reset, got %d bytes", w.Len())
		}
		if _, err := w.Write([]byte("12345678")); err != nil {
			t.Fatalf("Full capacity should be available after Reset: %v", err)
		}
	})

	t.Run("InvalidCapacityPanics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("Expected panic for non-positive capacity")
			}
		}()
		NewBoundedWriter(0)
	})
}
