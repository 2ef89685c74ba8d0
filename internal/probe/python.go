package probe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNoInterpreter is returned by FindInterpreter when no Python binary can
// be resolved.
var ErrNoInterpreter = errors.New("no python interpreter found on PATH")

// Interpreter identifies the Python runtime being probed.
type Interpreter struct {
	Executable string `json:"executable"`
	Version    string `json:"version"`
}

// Interpreter names tried in order when no override is given.
var interpreterNames = []string{"python3", "python"}

// FindInterpreter resolves the Python interpreter to probe. An explicit
// override (flag or env) is honored as-is when it is a path to an existing
// file, or looked up on PATH otherwise; with no override, python3 then
// python are tried on PATH.
func FindInterpreter(override string) (string, error) {
	if override != "" {
		if strings.ContainsRune(override, os.PathSeparator) {
			if _, err := os.Stat(override); err != nil {
				return "", fmt.Errorf("python interpreter %s: %w", override, err)
			}
			return override, nil
		}
		path, err := exec.LookPath(override)
		if err != nil {
			return "", fmt.Errorf("python interpreter %q not found on PATH", override)
		}
		return path, nil
	}
	for _, name := range interpreterNames {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", ErrNoInterpreter
}

// infoSnippet prints the interpreter's own executable path and version on
// two lines. sys.version may contain a newline on some builds, so it is
// flattened before printing.
const infoSnippet = `import sys
print(sys.executable)
print(sys.version.replace("\n", " "))`

// Identify runs the interpreter and returns its self-reported executable
// path and version string. The reported executable may differ from the
// invoked path (e.g. symlinked virtualenvs), which is exactly what we want
// to surface.
func Identify(ctx context.Context, python string) (Interpreter, error) {
	out, err := exec.CommandContext(ctx, python, "-c", infoSnippet).Output()
	if err != nil {
		return Interpreter{}, fmt.Errorf("identify interpreter %s: %s", python, execErrorDetail(err))
	}
	lines := strings.SplitN(strings.TrimSpace(string(out)), "\n", 2)
	if len(lines) != 2 {
		return Interpreter{}, fmt.Errorf("identify interpreter %s: unexpected output %q", python, string(out))
	}
	return Interpreter{
		Executable: strings.TrimSpace(lines[0]),
		Version:    strings.TrimSpace(lines[1]),
	}, nil
}

// importSnippet attempts the guarded import. The module name arrives via
// argv so it is never interpolated into code. Output is a single
// tab-separated record: "OK\t<version>" or "ERR\t<message>", where the
// message is str() of the ImportError (e.g. "No module named 'vosk'").
const importSnippet = `import importlib, sys
try:
    mod = importlib.import_module(sys.argv[1])
except ImportError as exc:
    sys.stdout.write("ERR\t" + str(exc))
else:
    sys.stdout.write("OK\t" + str(getattr(mod, "__version__", "Unknown")))`

// ModuleProbe checks whether a Python module can be imported by the probed
// interpreter, reporting its __version__ when it exposes one.
type ModuleProbe struct {
	Capability string // Stable capability name, e.g. "vosk".
	Display    string // Human-facing name, e.g. "Vosk".
	Python     string // Interpreter path; empty means discovery failed.
	Module     string // Python import name.
}

func (p ModuleProbe) Name() string        { return p.Capability }
func (p ModuleProbe) DisplayName() string { return p.Display }

// Probe runs the guarded import in a bounded subprocess. Any failure mode —
// missing interpreter, import error, broken module crashing at import time —
// collapses into an unavailable Result.
func (p ModuleProbe) Probe(ctx context.Context) Result {
	if p.Python == "" {
		return Unavailable(p.Capability, ErrNoInterpreter.Error())
	}
	out, err := exec.CommandContext(ctx, p.Python, "-c", importSnippet, p.Module).Output()
	if err != nil {
		return Unavailable(p.Capability, execErrorDetail(err))
	}
	return ParseImportOutput(p.Capability, string(out))
}

// ParseImportOutput converts the import snippet's tab-separated record into
// a Result. Exported for testing without a real interpreter.
//
// Only line endings are trimmed before splitting: a module whose
// __version__ is an empty string yields the record "OK\t", and the blank
// payload must survive to [Available], which collapses it to the Unknown
// sentinel.
func ParseImportOutput(capability, out string) Result {
	tag, rest, found := strings.Cut(strings.TrimRight(out, "\r\n"), "\t")
	switch {
	case found && tag == "OK":
		return Available(capability, rest)
	case found && tag == "ERR":
		return Unavailable(capability, rest)
	default:
		return Unavailable(capability, fmt.Sprintf("unexpected import probe output %q", strings.TrimSpace(out)))
	}
}

// execErrorDetail extracts a one-line human-readable reason from a failed
// subprocess. For exit errors the last stderr line (typically the Python
// exception) is used; anything else falls back to the error text.
func execErrorDetail(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if line := lastLine(string(exitErr.Stderr)); line != "" {
			return line
		}
		return exitErr.String()
	}
	return err.Error()
}

// lastLine returns the last non-blank line of s.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
