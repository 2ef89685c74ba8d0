//go:build !vosk

package probe

const bindingBuilt = false

// bindingProbe is the stub used when the binary was built without the Vosk
// cgo binding.
func bindingProbe(capability string) Result {
	return Unavailable(capability, "vosk binding not compiled in (build with -tags vosk)")
}
