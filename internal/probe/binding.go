package probe

import "context"

// BindingProbe reports on the Vosk cgo binding compiled into this binary.
// The actual check lives behind the "vosk" build tag (binding_vosk.go);
// default builds use the stub in binding_stub.go so the probe still reports
// a meaningful unavailable reason.
type BindingProbe struct {
	Capability string
	Display    string
}

func (p BindingProbe) Name() string        { return p.Capability }
func (p BindingProbe) DisplayName() string { return p.Display }

func (p BindingProbe) Probe(ctx context.Context) Result {
	return bindingProbe(p.Capability)
}

// BindingBuilt reports whether this binary was compiled with the Vosk
// binding (-tags vosk).
func BindingBuilt() bool { return bindingBuilt }
