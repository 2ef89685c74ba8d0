// Package check provides the interactive --check flow: full diagnostics of
// the speech-recognition runtime (Python interpreter, vosk module, native
// library and binding, ffmpeg tools, model directory).
package check

import (
	"context"
	"os"

	"github.com/varunkalambe/speechprobe/internal/config"
	"github.com/varunkalambe/speechprobe/internal/probe"
	"github.com/varunkalambe/speechprobe/internal/report"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// RunCheck runs the interactive --check flow and reports availability of
// the interpreter, the vosk module, the native library/binding, the ffmpeg
// tools, and the model directory. It is informational and never stops on
// failure; the return value is false when the core capability (the vosk
// Python module) is missing, so the caller can exit non-zero.
func RunCheck(ctx context.Context, cfg *config.Config, log Logger) bool {
	log.Info("=== Speech Runtime Check ===")

	python := checkInterpreter(ctx, cfg, log)
	ok := checkVoskModule(ctx, python, log)
	checkBinding(ctx, log)
	checkOptional(ctx, cfg, python, log)
	checkModelDir(cfg, log)

	return ok
}

// checkInterpreter resolves and identifies the Python interpreter. Returns
// the resolved path, or "" when discovery failed.
func checkInterpreter(ctx context.Context, cfg *config.Config, log Logger) string {
	python, err := probe.FindInterpreter(cfg.PythonPath)
	if err != nil {
		log.Error("Python: %v", err)
		return ""
	}
	interp, err := probe.Identify(ctx, python)
	if err != nil {
		log.Warn("Python found at %s but identification failed: %v", python, err)
		return python
	}
	log.Success("Python: %s", interp.Executable)
	log.Info("  %s", interp.Version)
	return python
}

// checkVoskModule probes the core capability. Its absence is the one
// condition that makes the whole check fail.
func checkVoskModule(ctx context.Context, python string, log Logger) bool {
	res := probe.ModuleProbe{Capability: "vosk", Display: "Vosk", Python: python, Module: "vosk"}.Probe(ctx)
	if !res.OK() {
		log.Error("Vosk module: %s", res.Detail)
		return false
	}
	log.Success("Vosk module: %s", res.Version)
	return true
}

// checkBinding reports on the compiled-in cgo binding.
func checkBinding(ctx context.Context, log Logger) {
	res := probe.BindingProbe{Capability: "vosk-binding", Display: "Vosk binding"}.Probe(ctx)
	if res.OK() {
		log.Success("Vosk binding: %s", res.Version)
		return
	}
	log.Warn("Vosk binding: %s", res.Detail)
}

// checkOptional probes the capabilities the backend can degrade without:
// the native library and the ffmpeg tools.
func checkOptional(ctx context.Context, cfg *config.Config, python string, log Logger) {
	var extraDirs []string
	if cfg.LibraryDir != "" {
		extraDirs = append(extraDirs, cfg.LibraryDir)
	}
	optional := []probe.Prober{
		probe.LibraryProbe{Capability: "libvosk", Display: "libvosk", Pattern: "libvosk.so*", ExtraDirs: extraDirs},
		probe.BinaryProbe{Capability: "ffmpeg", Display: "ffmpeg", Binary: "ffmpeg", VersionArgs: []string{"-version"}},
		probe.BinaryProbe{Capability: "ffprobe", Display: "ffprobe", Binary: "ffprobe", VersionArgs: []string{"-version"}},
	}
	for _, p := range optional {
		res := p.Probe(ctx)
		if res.OK() {
			log.Success("%s: %s", p.DisplayName(), res.Version)
		} else {
			log.Warn("%s: %s", p.DisplayName(), res.Detail)
		}
	}
}

// checkModelDir inspects the configured speech model directory and reports
// its on-disk size.
func checkModelDir(cfg *config.Config, log Logger) {
	if cfg.ModelDir == "" {
		log.Warn("Model dir: %s not set", config.EnvModelPath)
		return
	}
	fi, err := os.Stat(cfg.ModelDir)
	if err != nil || !fi.IsDir() {
		log.Error("Model dir: %s is not a directory", cfg.ModelDir)
		return
	}
	size, err := report.DirSize(cfg.ModelDir)
	if err != nil {
		log.Warn("Model dir: %s (size unknown: %v)", cfg.ModelDir, err)
		return
	}
	log.Success("Model dir: %s (%s)", cfg.ModelDir, report.FormatBytes(size))
}
