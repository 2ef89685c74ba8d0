package probe

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// Standard shared-library locations searched after any configured extra
// dirs and $LD_LIBRARY_PATH entries.
var defaultLibraryDirs = []string{
	"/usr/local/lib",
	"/usr/lib",
	"/usr/lib64",
	"/usr/lib/x86_64-linux-gnu",
	"/usr/lib/aarch64-linux-gnu",
}

// LibraryProbe checks whether a native shared library is present in the
// library search path. The version, when the installed soname carries one
// (libvosk.so.0.3.45), is lifted from the filename.
type LibraryProbe struct {
	Capability string   // Stable capability name, e.g. "libvosk".
	Display    string   // Human-facing name.
	Pattern    string   // Filename glob, e.g. "libvosk.so*".
	ExtraDirs  []string // Searched before LD_LIBRARY_PATH and the defaults.
}

func (p LibraryProbe) Name() string        { return p.Capability }
func (p LibraryProbe) DisplayName() string { return p.Display }

// Probe globs for the library across the search path. The first existing
// match wins; directories are scanned in priority order so a configured
// dir shadows a system-wide install.
func (p LibraryProbe) Probe(ctx context.Context) Result {
	for _, dir := range p.searchDirs() {
		matches, _ := filepath.Glob(filepath.Join(dir, p.Pattern))
		for _, m := range matches {
			if _, err := os.Stat(m); err == nil {
				return Available(p.Capability, VersionFromSoname(filepath.Base(m)))
			}
		}
	}
	return Unavailable(p.Capability, p.Pattern+" not found in library search path")
}

// searchDirs returns the ordered, de-duplicated list of directories to scan.
func (p LibraryProbe) searchDirs() []string {
	var dirs []string
	seen := map[string]bool{}
	add := func(dir string) {
		if dir != "" && !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	for _, d := range p.ExtraDirs {
		add(d)
	}
	for _, d := range filepath.SplitList(os.Getenv("LD_LIBRARY_PATH")) {
		add(d)
	}
	for _, d := range defaultLibraryDirs {
		add(d)
	}
	return dirs
}

// VersionFromSoname extracts the trailing version of a shared-object
// filename ("libvosk.so.0.3.45" -> "0.3.45"). Unversioned sonames yield the
// Unknown sentinel.
func VersionFromSoname(base string) string {
	const marker = ".so."
	idx := strings.LastIndex(base, marker)
	if idx < 0 {
		return UnknownVersion
	}
	v := base[idx+len(marker):]
	if v == "" {
		return UnknownVersion
	}
	return v
}
