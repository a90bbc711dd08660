/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmdproc

import (
	"fmt"
	"io"

	"github.com/suparena/cmdproc/errors"
)

// MaxCommandNameLen is the maximum length, in bytes, of a command name.
const MaxCommandNameLen = 32

// HelpCommand is the reserved name that triggers the built-in help listing.
// It is intercepted before lookup, so no registered command can shadow it.
const HelpCommand = "help"

// ReturnCode reports the outcome of a callback invocation.
type ReturnCode int

const (
	// Success indicates the command completed normally.
	Success ReturnCode = iota
	// Failure indicates the command ran but did not complete normally.
	Failure
)

// String returns a human-readable form of the return code.
func (rc ReturnCode) String() string {
	switch rc {
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("ReturnCode(%d)", int(rc))
	}
}

// Callback is the function invoked when its command is dispatched.
// The writer is the optional output sink passed to Dispatch; it may be nil,
// and a callback that requires one must enforce that itself. The writer is
// borrowed for the duration of the call only and must not be retained.
type Callback func(w io.Writer) (ReturnCode, error)

// entry is a single registered command. Entries live inline in the
// processor's fixed-capacity backing array and have no independent lifetime.
type entry struct {
	name     string
	callback Callback
	help     string // empty means no help text
}

// Processor is a bounded-capacity command registry and dispatcher.
//
// Capacity is fixed at construction: the backing storage is allocated once
// and never grows. Entries keep insertion order until a removal reorders
// them (see Remove). A Processor assumes a single owner; it performs no
// locking and must not be shared across concurrent callers.
type Processor struct {
	entries    []entry
	maxHelpLen int
}

// New creates an empty Processor that holds at most maxCommands commands,
// each with a help string of at most maxHelpLen bytes. Both bounds must be
// positive; New panics otherwise, since a zero-capacity processor can never
// do useful work.
func New(maxCommands, maxHelpLen int) *Processor {
	if maxCommands <= 0 {
		panic(fmt.Sprintf("cmdproc: invalid command capacity %d", maxCommands))
	}
	if maxHelpLen <= 0 {
		panic(fmt.Sprintf("cmdproc: invalid help length bound %d", maxHelpLen))
	}
	return &Processor{
		entries:    make([]entry, 0, maxCommands),
		maxHelpLen: maxHelpLen,
	}
}

// Add registers a command under the given name with an optional help string
// (empty means none). It fails with a CommandExistsError if the name is
// already registered, a ListFullError if the processor is at capacity, and a
// ValidationError if the name or help text violates the processor's bounds.
// On any failure the processor is left unchanged.
func (p *Processor) Add(name string, cb Callback, help string) error {
	if err := p.validate(name, cb, help); err != nil {
		return err
	}

	for i := range p.entries {
		if p.entries[i].name == name {
			return errors.NewCommandExistsError(name)
		}
	}

	if len(p.entries) == cap(p.entries) {
		return errors.NewListFullError(cap(p.entries))
	}

	p.entries = append(p.entries, entry{name: name, callback: cb, help: help})
	return nil
}

// Remove unregisters the command with the given name. The vacated slot is
// filled by moving the last entry into it, so insertion order is not
// preserved across a removal; help output reflects the new storage order.
// It fails with a CommandNotFoundError if no such command is registered.
func (p *Processor) Remove(name string) error {
	for i := range p.entries {
		if p.entries[i].name == name {
			last := len(p.entries) - 1
			p.entries[i] = p.entries[last]
			p.entries[last] = entry{}
			p.entries = p.entries[:last]
			return nil
		}
	}
	return errors.NewCommandNotFoundError(name)
}

// Dispatch looks up the command with the given name and invokes its callback
// with w, which may be nil. The callback's result is returned verbatim.
//
// The reserved name "help" is intercepted before lookup: it writes every
// registered help string to w, one per line, and fails with ErrNoWriter if w
// is nil. An unknown name fails with a CommandNotFoundError.
func (p *Processor) Dispatch(name string, w io.Writer) (ReturnCode, error) {
	if name == HelpCommand {
		if w == nil {
			return Failure, errors.NewNoWriterError()
		}
		return p.printHelp(w)
	}

	for i := range p.entries {
		if p.entries[i].name == name {
			return p.entries[i].callback(w)
		}
	}
	return Failure, errors.NewCommandNotFoundError(name)
}

// printHelp writes the help string of every entry that has one, in current
// storage order, each followed by a newline. A failed write aborts the
// listing with a WriteError; output already written stays in the sink.
func (p *Processor) printHelp(w io.Writer) (ReturnCode, error) {
	for i := range p.entries {
		if p.entries[i].help == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, p.entries[i].help); err != nil {
			return Failure, errors.NewWriteError(err)
		}
	}
	return Success, nil
}

// Len returns the number of registered commands.
func (p *Processor) Len() int {
	return len(p.entries)
}

// Cap returns the maximum number of commands the processor can hold.
func (p *Processor) Cap() int {
	return cap(p.entries)
}

// MaxHelpLen returns the maximum help string length the processor accepts.
func (p *Processor) MaxHelpLen() int {
	return p.maxHelpLen
}

// Has reports whether a command with the given name is registered. The
// reserved "help" name is not a registered command and always reports false.
func (p *Processor) Has(name string) bool {
	for i := range p.entries {
		if p.entries[i].name == name {
			return true
		}
	}
	return false
}

func (p *Processor) validate(name string, cb Callback, help string) error {
	if name == "" {
		return errors.NewValidationError("name", "command name is required")
	}
	if len(name) > MaxCommandNameLen {
		return errors.NewValidationError("name",
			fmt.Sprintf("command name exceeds %d bytes", MaxCommandNameLen))
	}
	if name == HelpCommand {
		return errors.NewValidationError("name",
			fmt.Sprintf("%q is reserved for the built-in help listing", HelpCommand))
	}
	if cb == nil {
		return errors.NewValidationError("callback", "callback is required")
	}
	if len(help) > p.maxHelpLen {
		return errors.NewValidationError("help",
			fmt.Sprintf("help text exceeds %d bytes", p.maxHelpLen))
	}
	return nil
}
