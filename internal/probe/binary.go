package probe

import (
	"context"
	"os/exec"
	"strings"
)

// BinaryProbe checks whether a tool is on PATH, reporting the first line of
// its version command output as the capability version.
type BinaryProbe struct {
	Capability  string   // Stable capability name, e.g. "ffmpeg".
	Display     string   // Human-facing name.
	Binary      string   // Executable name looked up on PATH.
	VersionArgs []string // Arguments that print a version banner; may be nil.
}

func (p BinaryProbe) Name() string        { return p.Capability }
func (p BinaryProbe) DisplayName() string { return p.Display }

// Probe looks up the binary and queries its version. A binary that is
// present but whose version command fails still counts as available with
// the Unknown sentinel.
func (p BinaryProbe) Probe(ctx context.Context) Result {
	path, err := exec.LookPath(p.Binary)
	if err != nil {
		return Unavailable(p.Capability, p.Binary+" not found on PATH")
	}
	if len(p.VersionArgs) == 0 {
		return Available(p.Capability, UnknownVersion)
	}
	out, err := exec.CommandContext(ctx, path, p.VersionArgs...).Output()
	if err != nil {
		return Available(p.Capability, UnknownVersion)
	}
	return Available(p.Capability, firstLine(string(out)))
}

// firstLine returns the first non-blank line of s.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
