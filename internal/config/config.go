// Package config holds runtime configuration: defaults, CLI flag parsing,
// dotenv loading, and validation.
package config

import (
	"errors"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] and [LoadEnv] before being passed (by pointer)
// to packages that need it.
type Config struct {
	// Probe selection.
	Capability   string // Builtin capability to probe. Default: "vosk".
	ProbeAll     bool   // Probe every builtin capability.
	ManifestPath string // Probe capabilities from a YAML manifest instead.

	// Probed environment.
	PythonPath string // Interpreter override. Empty: discover on PATH.
	EnvFile    string // Dotenv file. Empty: load ./.env when present.
	ModelDir   string // Speech model directory (VOSK_MODEL_PATH).
	LibraryDir string // Extra shared-library search dir (VOSK_LIBRARY_PATH).

	// Output and behavior.
	JSONOutput bool
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	CheckOnly  bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults matching the legacy
// backend smoke test: a bare invocation probes the vosk Python module.
func DefaultConfig() Config {
	return Config{
		Capability: "vosk",
		ColorMode:  ColorAuto,
	}
}

// Validate checks enum fields and rejects flag combinations that would mix
// the plain probe output contract with the diagnostic surfaces.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if strings.TrimSpace(c.Capability) == "" {
		return errors.New("capability name must not be empty")
	}

	if c.CheckOnly {
		if c.JSONOutput {
			return errors.New("--check output is diagnostic text; cannot combine with --json")
		}
		if c.ProbeAll || c.ManifestPath != "" {
			return errors.New("--check already probes everything; drop --all/--manifest")
		}
		return nil
	}

	if c.ProbeAll && c.ManifestPath != "" {
		return errors.New("choose one of --all or --manifest")
	}
	return nil
}
