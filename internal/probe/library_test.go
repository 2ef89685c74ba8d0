package probe

import (
	"context"
	"path/filepath"
	"testing"
)

func TestLibraryProbe_FoundInExtraDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "libvosk.so.0.3.45"))

	p := LibraryProbe{Capability: "libvosk", Display: "libvosk", Pattern: "libvosk.so*", ExtraDirs: []string{dir}}
	res := p.Probe(context.Background())
	if !res.OK() {
		t.Fatalf("expected available, got detail %q", res.Detail)
	}
	if res.Version != "0.3.45" {
		t.Errorf("version = %q, want %q", res.Version, "0.3.45")
	}
}

func TestLibraryProbe_UnversionedSoname(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "libvosk.so"))

	p := LibraryProbe{Capability: "libvosk", Display: "libvosk", Pattern: "libvosk.so*", ExtraDirs: []string{dir}}
	res := p.Probe(context.Background())
	if !res.OK() {
		t.Fatalf("expected available, got detail %q", res.Detail)
	}
	if res.Version != UnknownVersion {
		t.Errorf("version = %q, want %q", res.Version, UnknownVersion)
	}
}

func TestLibraryProbe_NotFound(t *testing.T) {
	p := LibraryProbe{
		Capability: "libvosk",
		Display:    "libvosk",
		Pattern:    "libdefinitely-not-installed.so*",
		ExtraDirs:  []string{t.TempDir()},
	}
	res := p.Probe(context.Background())
	if res.OK() {
		t.Fatal("expected unavailable")
	}
	if res.Detail != "libdefinitely-not-installed.so* not found in library search path" {
		t.Errorf("detail = %q", res.Detail)
	}
}

func TestVersionFromSoname(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
	}{
		{"full version", "libvosk.so.0.3.45", "0.3.45"},
		{"major only", "libvosk.so.1", "1"},
		{"unversioned", "libvosk.so", UnknownVersion},
		{"trailing dot", "libvosk.so.", UnknownVersion},
		{"not a library", "vosk.dll", UnknownVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VersionFromSoname(tt.base); got != tt.want {
				t.Errorf("VersionFromSoname(%q) = %q, want %q", tt.base, got, tt.want)
			}
		})
	}
}

func TestSearchDirs_PriorityAndDedup(t *testing.T) {
	t.Setenv("LD_LIBRARY_PATH", "/opt/vosk/lib:/usr/lib")

	p := LibraryProbe{ExtraDirs: []string{"/opt/vosk/lib", "/custom"}}
	dirs := p.searchDirs()

	if dirs[0] != "/opt/vosk/lib" || dirs[1] != "/custom" {
		t.Errorf("extra dirs must come first, got %v", dirs[:2])
	}
	seen := map[string]int{}
	for _, d := range dirs {
		seen[d]++
		if seen[d] > 1 {
			t.Errorf("duplicate dir %q in %v", d, dirs)
		}
	}
}
