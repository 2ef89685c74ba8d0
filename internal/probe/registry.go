package probe

// Builtin capability registry. The set mirrors what the transcription
// backend needs at runtime: the vosk Python module (the capability the
// legacy smoke test probed), the native library and Go binding behind it,
// and the ffmpeg tools used for audio extraction.

// Builtins returns the probers for every builtin capability, in report
// order. python is the resolved interpreter path ("" when discovery
// failed); extraLibDirs are searched first for shared libraries.
func Builtins(python string, extraLibDirs []string) []Prober {
	return []Prober{
		ModuleProbe{Capability: "vosk", Display: "Vosk", Python: python, Module: "vosk"},
		LibraryProbe{Capability: "libvosk", Display: "libvosk", Pattern: "libvosk.so*", ExtraDirs: extraLibDirs},
		BindingProbe{Capability: "vosk-binding", Display: "Vosk binding"},
		BinaryProbe{Capability: "ffmpeg", Display: "ffmpeg", Binary: "ffmpeg", VersionArgs: []string{"-version"}},
		BinaryProbe{Capability: "ffprobe", Display: "ffprobe", Binary: "ffprobe", VersionArgs: []string{"-version"}},
	}
}

// Builtin returns the named builtin prober, or false when the name is not
// registered.
func Builtin(name, python string, extraLibDirs []string) (Prober, bool) {
	for _, p := range Builtins(python, extraLibDirs) {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// BuiltinNames returns the registered capability names in report order,
// for usage messages.
func BuiltinNames() []string {
	probers := Builtins("", nil)
	names := make([]string, len(probers))
	for i, p := range probers {
		names[i] = p.Name()
	}
	return names
}
