// Package probe determines whether named optional capabilities are present
// in the speech-recognition runtime environment and reports availability
// plus a version identifier, without exercising any capability APIs.
//
// A capability is probed from the outside, the way an operator would check
// it by hand:
//
//   - ModuleProbe: guarded import of a Python module via a bounded
//     interpreter subprocess (the backend's own loading mechanism).
//   - BinaryProbe: PATH lookup plus the first line of a version command.
//   - LibraryProbe: shared-object search across the library search path.
//   - BindingProbe: the compiled-in Vosk cgo binding (build tag "vosk").
//
// Every probe converts "not found" into a Result with StatusUnavailable and
// a human-readable detail; absence is a reportable outcome, never an error.
package probe
