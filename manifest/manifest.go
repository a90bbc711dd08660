/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-openapi/strfmt"
	"github.com/suparena/cmdproc"
	"github.com/suparena/cmdproc/errors"
)

// Command declares a single command: its name and optional help line.
type Command struct {
	Name string `yaml:"name" json:"name"`
	Help string `yaml:"help,omitempty" json:"help,omitempty"`
}

// Manifest is the declarative description of a processor: its capacity
// bounds and the commands it serves. Manifests are authored in YAML at
// design time and consumed by cmdgen at build time or applied directly
// at runtime.
type Manifest struct {
	// Name identifies the manifest, typically the owning tool or service.
	Name string `yaml:"name" json:"name"`

	// MaxCommands is the processor capacity the manifest targets.
	MaxCommands int `yaml:"maxCommands" json:"maxCommands"`

	// MaxHelpLen is the maximum help string length in bytes.
	MaxHelpLen int `yaml:"maxHelpLen" json:"maxHelpLen"`

	// Commands lists the declared commands in registration order.
	Commands []Command `yaml:"commands" json:"commands"`

	// UpdatedAt is the timestamp of the last manifest edit.
	UpdatedAt *strfmt.DateTime `yaml:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Parse decodes a YAML manifest and validates it.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and parses a YAML manifest from a file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}
	return Parse(data)
}

// Validate checks the manifest against the same rules Processor.Add
// enforces: bounded unique names, no reserved name, bounded help strings,
// and a command count that fits the declared capacity.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return errors.NewValidationError("name", "manifest name is required")
	}
	if m.MaxCommands <= 0 {
		return errors.NewValidationError("maxCommands", "must be positive")
	}
	if m.MaxHelpLen <= 0 {
		return errors.NewValidationError("maxHelpLen", "must be positive")
	}
	if len(m.Commands) > m.MaxCommands {
		return errors.NewValidationError("commands",
			fmt.Sprintf("%d commands exceed capacity %d", len(m.Commands), m.MaxCommands))
	}

	seen := make(map[string]bool, len(m.Commands))
	for _, c := range m.Commands {
		if c.Name == "" {
			return errors.NewValidationError("commands", "command name is required")
		}
		if len(c.Name) > cmdproc.MaxCommandNameLen {
			return errors.NewValidationError("commands",
				fmt.Sprintf("command name %q exceeds %d bytes", c.Name, cmdproc.MaxCommandNameLen))
		}
		if c.Name == cmdproc.HelpCommand {
			return errors.NewValidationError("commands",
				fmt.Sprintf("%q is reserved for the built-in help listing", cmdproc.HelpCommand))
		}
		if len(c.Help) > m.MaxHelpLen {
			return errors.NewValidationError("commands",
				fmt.Sprintf("help for %q exceeds %d bytes", c.Name, m.MaxHelpLen))
		}
		if seen[c.Name] {
			return errors.NewValidationError("commands",
				fmt.Sprintf("duplicate command %q", c.Name))
		}
		seen[c.Name] = true
	}
	return nil
}

// Apply registers every declared command on p, resolving callbacks by name.
// Each declared command must have a callback; a missing one fails with a
// ValidationError before any registration happens, so a failed Apply from a
// fresh processor leaves it empty.
func (m *Manifest) Apply(p *cmdproc.Processor, callbacks map[string]cmdproc.Callback) error {
	for _, c := range m.Commands {
		if callbacks[c.Name] == nil {
			return errors.NewValidationError("callbacks",
				fmt.Sprintf("no callback for command %q", c.Name))
		}
	}
	for _, c := range m.Commands {
		if err := p.Add(c.Name, callbacks[c.Name], c.Help); err != nil {
			return fmt.Errorf("failed to register %q: %w", c.Name, err)
		}
	}
	return nil
}

// Build constructs a processor sized from the manifest bounds and applies
// the manifest to it.
func (m *Manifest) Build(callbacks map[string]cmdproc.Callback) (*cmdproc.Processor, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	p := cmdproc.New(m.MaxCommands, m.MaxHelpLen)
	if err := m.Apply(p, callbacks); err != nil {
		return nil, err
	}
	return p, nil
}

// Marshal encodes the manifest as YAML.
func (m *Manifest) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return data, nil
}
