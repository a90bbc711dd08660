/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmdproc

import (
	"github.com/suparena/cmdproc/errors"
)

// BoundedWriter is a fixed-capacity io.Writer backed by a buffer allocated
// once at construction. It is the natural sink for embedded-style callers
// that must not allocate while dispatching: a write that would exceed the
// capacity stores the prefix that fits and fails with ErrWriterFull.
type BoundedWriter struct {
	buf []byte
}

// NewBoundedWriter creates a BoundedWriter holding at most capacity bytes.
// It panics on a non-positive capacity.
func NewBoundedWriter(capacity int) *BoundedWriter {
	if capacity <= 0 {
		panic("cmdproc: invalid writer capacity")
	}
	return &BoundedWriter{buf: make([]byte, 0, capacity)}
}

// Write appends p to the buffer. If p does not fit, the prefix that fits is
// kept and the write fails with ErrWriterFull; the caller sees how many
// bytes were accepted.
func (w *BoundedWriter) Write(p []byte) (int, error) {
	free := cap(w.buf) - len(w.buf)
	if len(p) <= free {
		w.buf = append(w.buf, p...)
		return len(p), nil
	}
	w.buf = append(w.buf, p[:free]...)
	return free, errors.ErrWriterFull
}

// String returns the accumulated output.
func (w *BoundedWriter) String() string {
	return string(w.buf)
}

// Bytes returns the accumulated output without copying.
func (w *BoundedWriter) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *BoundedWriter) Len() int {
	return len(w.buf)
}

// Cap returns the writer's fixed capacity.
func (w *BoundedWriter) Cap() int {
	return cap(w.buf)
}

// Reset discards the accumulated output, keeping the backing buffer.
func (w *BoundedWriter) Reset() {
	w.buf = w.buf[:0]
}
