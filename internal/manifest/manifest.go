// Package manifest loads YAML capability manifests, letting deployments
// describe the exact probe set for their environment instead of relying on
// the builtin registry.
//
// Example:
//
//	capabilities:
//	  - name: vosk
//	    display: Vosk
//	    kind: python-module
//	    module: vosk
//	  - name: ffmpeg
//	    kind: binary
//	    binary: ffmpeg
//	    version_args: ["-version"]
//	  - name: libvosk
//	    kind: library
//	    library: "libvosk.so*"
package manifest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/varunkalambe/speechprobe/internal/probe"
)

// Kind selects how a capability is probed.
type Kind string

const (
	KindPythonModule Kind = "python-module" // Guarded import via the interpreter.
	KindBinary       Kind = "binary"        // PATH lookup + version command.
	KindLibrary      Kind = "library"       // Shared-object search.
)

// Capability is one manifest entry. The kind determines which of the
// kind-specific fields must be set.
type Capability struct {
	Name        string   `yaml:"name"`
	Display     string   `yaml:"display"` // Optional; defaults to Name.
	Kind        Kind     `yaml:"kind"`
	Module      string   `yaml:"module"`       // python-module: import name.
	Binary      string   `yaml:"binary"`       // binary: executable name.
	VersionArgs []string `yaml:"version_args"` // binary: version banner args.
	Library     string   `yaml:"library"`      // library: filename glob.
}

// Manifest is the parsed capability manifest.
type Manifest struct {
	Capabilities []Capability `yaml:"capabilities"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return &m, nil
}

// Validate checks that every entry is named, uniquely, and carries the
// field its kind requires.
func (m *Manifest) Validate() error {
	if len(m.Capabilities) == 0 {
		return fmt.Errorf("no capabilities defined")
	}
	seen := map[string]bool{}
	for i := range m.Capabilities {
		c := &m.Capabilities[i]
		c.Name = strings.ToLower(strings.TrimSpace(c.Name))
		if c.Name == "" {
			return fmt.Errorf("capability %d: name is required", i+1)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate capability %q", c.Name)
		}
		seen[c.Name] = true
		if c.Display == "" {
			c.Display = c.Name
		}
		switch c.Kind {
		case KindPythonModule:
			if c.Module == "" {
				return fmt.Errorf("capability %q: python-module kind requires 'module'", c.Name)
			}
		case KindBinary:
			if c.Binary == "" {
				return fmt.Errorf("capability %q: binary kind requires 'binary'", c.Name)
			}
		case KindLibrary:
			if c.Library == "" {
				return fmt.Errorf("capability %q: library kind requires 'library'", c.Name)
			}
		default:
			return fmt.Errorf("capability %q: unknown kind %q (use python-module, binary or library)", c.Name, c.Kind)
		}
	}
	return nil
}

// Probers converts the manifest entries into probers. python is the
// resolved interpreter path ("" when discovery failed); extraLibDirs are
// searched first for library kinds.
func (m *Manifest) Probers(python string, extraLibDirs []string) []probe.Prober {
	probers := make([]probe.Prober, 0, len(m.Capabilities))
	for _, c := range m.Capabilities {
		switch c.Kind {
		case KindPythonModule:
			probers = append(probers, probe.ModuleProbe{
				Capability: c.Name, Display: c.Display,
				Python: python, Module: c.Module,
			})
		case KindBinary:
			probers = append(probers, probe.BinaryProbe{
				Capability: c.Name, Display: c.Display,
				Binary: c.Binary, VersionArgs: c.VersionArgs,
			})
		case KindLibrary:
			probers = append(probers, probe.LibraryProbe{
				Capability: c.Name, Display: c.Display,
				Pattern: c.Library, ExtraDirs: extraLibDirs,
			})
		}
	}
	return probers
}
