// Command speechprobe is the CLI entrypoint for the speech-recognition
// runtime prober.
//
// It parses flags, loads backend dotenv settings, and either runs the
// canonical vosk probe (default invocation), a single/batch capability
// probe, or full runtime diagnostics (--check).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/varunkalambe/speechprobe/internal/check"
	"github.com/varunkalambe/speechprobe/internal/config"
	"github.com/varunkalambe/speechprobe/internal/logging"
	"github.com/varunkalambe/speechprobe/internal/manifest"
	"github.com/varunkalambe/speechprobe/internal/pipeline"
	"github.com/varunkalambe/speechprobe/internal/probe"
	"github.com/varunkalambe/speechprobe/internal/report"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — config errors go directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "speechprobe: %v\n", err)
		return 2
	}
	if err := config.LoadEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "speechprobe: %v\n", err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "speechprobe: %v\n", err)
		return 2
	}

	// An explicit interpreter that does not resolve is a usage error, not a
	// probe outcome; only PATH-discovery misses are reported via the probe.
	if cfg.PythonPath != "" {
		python, err := probe.FindInterpreter(cfg.PythonPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "speechprobe: %v\n", err)
			return 2
		}
		cfg.PythonPath = python
	}

	// Cancel subprocess probes on SIGINT/SIGTERM. Probes are short and
	// local, so cancellation between them is enough.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Phase 2: Diagnostic surfaces (--check, --all, --manifest) run through
	// the logger; the plain probe invocation below does not, because its
	// 3–4 output lines are a fixed contract.
	if cfg.CheckOnly || cfg.ProbeAll || cfg.ManifestPath != "" {
		return runDiagnostics(ctx, &cfg)
	}

	return runProbe(ctx, &cfg)
}

// runProbe is the default invocation: probe one capability and print the
// canonical report. Capability absence is a reported outcome, so this path
// exits 0 regardless of probe result; only an unknown capability name is a
// usage error.
func runProbe(ctx context.Context, cfg *config.Config) int {
	python, interp := resolveInterpreter(ctx, cfg)

	prober, ok := probe.Builtin(cfg.Capability, python, extraLibDirs(cfg))
	if !ok {
		fmt.Fprintf(os.Stderr, "speechprobe: unknown capability %q (builtins: %v)\n",
			cfg.Capability, probe.BuiltinNames())
		return 2
	}

	res := prober.Probe(ctx)

	if cfg.JSONOutput {
		rep := report.JSONReport{Python: &interp, Results: []probe.Result{res}}
		if err := report.WriteJSON(os.Stdout, rep); err != nil {
			fmt.Fprintf(os.Stderr, "speechprobe: %v\n", err)
			return 1
		}
		return 0
	}

	report.PrintResult(os.Stdout, interp, prober.DisplayName(), res)
	return 0
}

// runDiagnostics handles --check and the batch probe modes.
func runDiagnostics(ctx context.Context, cfg *config.Config) int {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "speechprobe: %v\n", err)
		return 1
	}
	defer log.Close()

	if cfg.CheckOnly {
		report.PrintBanner()
		log.Debug("speechprobe v%s (%s)", version, commit)
		if !check.RunCheck(ctx, cfg, log) {
			return 1
		}
		return 0
	}

	python, interp := resolveInterpreter(ctx, cfg)

	var probers []probe.Prober
	if cfg.ManifestPath != "" {
		m, err := manifest.Load(cfg.ManifestPath)
		if err != nil {
			log.Error("%v", err)
			return 1
		}
		probers = m.Probers(python, extraLibDirs(cfg))
	} else {
		probers = probe.Builtins(python, extraLibDirs(cfg))
	}

	results, _ := pipeline.Run(ctx, probers, log, cfg.JSONOutput)

	if cfg.JSONOutput {
		rep := report.JSONReport{Python: &interp, Results: results}
		if err := report.WriteJSON(os.Stdout, rep); err != nil {
			log.Error("%v", err)
			return 1
		}
	}
	// Unavailable capabilities are reported outcomes, not process failures.
	return 0
}

// resolveInterpreter discovers and identifies the Python runtime. An
// explicit cfg.PythonPath was already resolved during bootstrap and is used
// as-is. Both steps degrade instead of failing: a missing interpreter
// leaves the path empty (module probes then report it as the failure
// detail), and a failed identification still reports the resolved path.
func resolveInterpreter(ctx context.Context, cfg *config.Config) (string, probe.Interpreter) {
	python := cfg.PythonPath
	if python == "" {
		var err error
		python, err = probe.FindInterpreter("")
		if err != nil {
			return "", probe.Interpreter{Executable: report.NotFound, Version: report.NotFound}
		}
	}
	interp, err := probe.Identify(ctx, python)
	if err != nil {
		return python, probe.Interpreter{Executable: python, Version: probe.UnknownVersion}
	}
	return python, interp
}

// extraLibDirs returns the configured extra shared-library search dirs.
func extraLibDirs(cfg *config.Config) []string {
	if cfg.LibraryDir == "" {
		return nil
	}
	return []string{cfg.LibraryDir}
}
