/*
Package manifest defines the declarative command manifest format for cmdproc.

A manifest describes a processor at design time: its capacity bounds and the
commands it serves. Manifests are authored in YAML:

	name: robot-console
	maxCommands: 8
	maxHelpLen: 64
	commands:
	  - name: status
	    help: "status: Print system status"
	  - name: reboot
	    help: "reboot: Restart the controller"
	  - name: ping

Commands without help text are valid; they are simply omitted from the
built-in help listing.

Manifests are validated with the same rules the processor enforces at
registration time (bounded unique names, the reserved "help" name, bounded
help strings), so a manifest that validates is guaranteed to apply cleanly
to a fresh processor.

Usage:

	m, err := manifest.Load("commands.yaml")
	if err != nil {
	    return err
	}

	proc, err := m.Build(map[string]cmdproc.Callback{
	    "status": statusCommand,
	    "reboot": rebootCommand,
	    "ping":   pingCommand,
	})

Manifests can also be shared between tools through a manifeststore.Store,
or turned into registration code with the cmdgen tool.
*/
package manifest
