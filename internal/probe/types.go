package probe

import (
	"context"
	"strings"
)

// Status is the outcome of a capability probe.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
)

// UnknownVersion is the sentinel reported when a capability is present but
// exposes no version identifier.
const UnknownVersion = "Unknown"

// Result is the outcome of probing a single capability. Exactly one of
// Version / Detail is populated, determined by Status; the [Available] and
// [Unavailable] constructors enforce this.
type Result struct {
	Capability string `json:"capability"`
	Status     Status `json:"status"`
	Version    string `json:"version,omitempty"` // Only when available.
	Detail     string `json:"detail,omitempty"`  // Only when unavailable.
}

// Available builds a success Result. An empty or blank version collapses to
// the [UnknownVersion] sentinel so callers never emit an empty version line.
func Available(capability, version string) Result {
	version = strings.TrimSpace(version)
	if version == "" {
		version = UnknownVersion
	}
	return Result{
		Capability: capability,
		Status:     StatusAvailable,
		Version:    version,
	}
}

// Unavailable builds a failure Result carrying the human-readable reason
// produced by the failed load attempt.
func Unavailable(capability, detail string) Result {
	return Result{
		Capability: capability,
		Status:     StatusUnavailable,
		Detail:     strings.TrimSpace(detail),
	}
}

// OK reports whether the capability was found.
func (r Result) OK() bool { return r.Status == StatusAvailable }

// Prober performs a single capability check. Implementations must never
// return an error: capability absence is encoded in the Result.
type Prober interface {
	// Name is the stable capability identifier (e.g. "vosk").
	Name() string
	// DisplayName is the human-facing capability name (e.g. "Vosk").
	DisplayName() string
	// Probe runs the check. It must complete even when the capability is
	// missing or broken.
	Probe(ctx context.Context) Result
}
