//go:build vosk

package probe

import (
	"runtime/debug"
	"strings"

	vosk "github.com/alphacep/vosk-api/go"
)

const bindingBuilt = true

// voskBindingModule is the binding's module path as it appears in build info.
const voskBindingModule = "github.com/alphacep/vosk-api/go"

// bindingProbe touches the binding and reports the linked module version.
// Reaching this function at all means libvosk resolved at process start;
// the binding is dynamically linked, so an absent library would have failed
// before main.
func bindingProbe(capability string) Result {
	vosk.SetLogLevel(-1)
	return Available(capability, bindingVersion())
}

// bindingVersion reads the binding's module version from the binary's build
// info. Binaries built outside module mode fall back to the Unknown sentinel.
func bindingVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return UnknownVersion
	}
	for _, dep := range bi.Deps {
		if dep.Path == voskBindingModule {
			return strings.TrimPrefix(dep.Version, "v")
		}
	}
	return UnknownVersion
}
