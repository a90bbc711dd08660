/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codegen

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"text/template"

	"github.com/suparena/cmdproc/manifest"
)

var fileTemplate = template.Must(template.New("registration").Parse(
	`// Code generated by cmdgen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/suparena/cmdproc"
)

// NewProcessor creates a processor sized for the {{.Manifest.Name}} manifest.
func NewProcessor() *cmdproc.Processor {
	return cmdproc.New({{.Manifest.MaxCommands}}, {{.Manifest.MaxHelpLen}})
}

// RegisterCommands registers every {{.Manifest.Name}} command on p, resolving
// callbacks by name.
func RegisterCommands(p *cmdproc.Processor, callbacks map[string]cmdproc.Callback) error {
	commands := []struct {
		name string
		help string
	}{
{{- range .Manifest.Commands}}
		{{"{"}}{{printf "%q" .Name}}, {{printf "%q" .Help}}{{"}"}},
{{- end}}
	}
	for _, c := range commands {
		if err := p.Add(c.name, callbacks[c.name], c.help); err != nil {
			return err
		}
	}
	return nil
}
`))

type templateData struct {
	Package  string
	Manifest *manifest.Manifest
}

// Generate renders Go registration code for the manifest into the given
// package. The output is gofmt-formatted.
func Generate(m *manifest.Manifest, pkg string) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if pkg == "" {
		return nil, fmt.Errorf("package name is required")
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, templateData{Package: pkg, Manifest: m}); err != nil {
		return nil, fmt.Errorf("failed to render registration code: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not format: %w", err)
	}
	return src, nil
}

// Flags are registered at package load so they are visible no matter when
// the embedding command calls flag.Parse.
var (
	inputFlag   = flag.String("input", "commands.yaml", "Path to the YAML command manifest")
	outputFlag  = flag.String("output", "", "Output file (defaults to stdout)")
	packageFlag = flag.String("package", "commands", "Package name for the generated file")
)

// Main is the flag-driven entrypoint used by the cmdgen command. It reads a
// YAML manifest and writes the generated registration file.
func Main() {
	if !flag.Parsed() {
		flag.Parse()
	}

	m, err := manifest.Load(*inputFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cmdgen: %v\n", err)
		os.Exit(1)
	}

	src, err := Generate(m, *packageFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cmdgen: %v\n", err)
		os.Exit(1)
	}

	if *outputFlag == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*outputFlag, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "cmdgen: %v\n", err)
		os.Exit(1)
	}
}
