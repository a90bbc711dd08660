/*
Package cmdproc provides a bounded-capacity command registry and dispatcher
for resource-constrained applications that must not allocate after startup.

The processor owns a fixed number of command slots, sized at construction.
Callers register named callbacks with optional help text; dispatch resolves a
name to its callback with a linear scan and invokes it with an optional
output writer. The reserved name "help" is intercepted before lookup and
prints every registered help string to the writer, one per line.

The library follows a design-time → build-time → runtime workflow:
  - Design-time: declare commands in a YAML manifest
  - Build-time: generate registration code with cmdgen
  - Runtime: dispatch against the fixed-capacity processor

Key Features:
  - Fixed-capacity storage with construction-time bounds, no growth
  - Bounded command names (32 bytes) and help strings
  - Reserved, unshadowable built-in "help" listing
  - Semantic error types for better error handling
  - Declarative YAML manifests with code generation
  - Manifest sharing through pluggable stores (DynamoDB, mock)

Basic Usage:

	// Create a processor with room for 8 commands and 64-byte help strings
	proc := cmdproc.New(8, 64)

	// Register a command
	err := proc.Add("status", func(w io.Writer) (cmdproc.ReturnCode, error) {
	    if w != nil {
	        fmt.Fprintln(w, "all systems nominal")
	    }
	    return cmdproc.Success, nil
	}, "status: Print system status")

	// Dispatch it
	out := cmdproc.NewBoundedWriter(128)
	rc, err := proc.Dispatch("status", out)

	// List help for every registered command
	rc, err = proc.Dispatch("help", out)

For more information, see the documentation at https://github.com/suparena/cmdproc
*/
package cmdproc
