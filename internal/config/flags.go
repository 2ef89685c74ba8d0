package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into probe selection, environment, display, and utility.
// Override flags (e.g. --no-color) are applied after Parse so Config defaults
// hold unless the user passes the flag.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, stray positional
// args).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("speechprobe", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var over overrideFlags

	defineProbeFlags(fs, cfg)
	defineEnvironmentFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &over)
	defineUtilityFlags(fs, &over)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyOverrideFlags(cfg, &over)

	if over.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if over.showVersion {
		fmt.Fprintln(os.Stdout, "speechprobe v"+version)
		os.Exit(0)
	}

	if args := fs.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument %q (capabilities are selected with --capability)", args[0])
	}
	return nil
}

// overrideFlags holds boolean flags that are applied after Parse.
// These either invert a default (noColor -> ColorMode) or trigger exit
// (showHelp, showVersion).
type overrideFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineProbeFlags registers --capability, -a/--all, -m/--manifest, -c/--check.
func defineProbeFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Capability, "capability", cfg.Capability, "Builtin capability to probe")
	fs.BoolVar(&cfg.ProbeAll, "all", false, "Probe every builtin capability")
	fs.BoolVar(&cfg.ProbeAll, "a", false, "Same as --all")
	fs.StringVar(&cfg.ManifestPath, "manifest", "", "Probe capabilities from a YAML manifest")
	fs.StringVar(&cfg.ManifestPath, "m", "", "Same as --manifest")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run full runtime diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
}

// defineEnvironmentFlags registers --python and -e/--env.
func defineEnvironmentFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.PythonPath, "python", "", "Python interpreter to probe (default: discover on PATH)")
	fs.StringVar(&cfg.EnvFile, "env", "", "Dotenv file with backend settings (default: ./.env when present)")
	fs.StringVar(&cfg.EnvFile, "e", "", "Same as --env")
}

// defineDisplayFlags registers -j/--json, --color, --no-color, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, o *overrideFlags) {
	fs.BoolVar(&cfg.JSONOutput, "json", false, "Emit results as JSON")
	fs.BoolVar(&cfg.JSONOutput, "j", false, "Same as --json")
	fs.BoolVar(&o.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, o *overrideFlags) {
	fs.BoolVar(&o.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&o.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&o.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&o.showHelp, "h", false, "Same as --help")
}

// applyOverrideFlags copies override flag values into cfg.
func applyOverrideFlags(cfg *Config, o *overrideFlags) {
	if o.noColor {
		cfg.ColorMode = ColorNever
	} else if o.forceColor {
		cfg.ColorMode = ColorAlways
	}
	cfg.Capability = strings.ToLower(strings.TrimSpace(cfg.Capability))
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "speechprobe v" + version + " — speech-recognition runtime diagnostics"},
		{"", ""},
		{"  speechprobe [OPTIONS]", ""},
		{"", ""},
		{"Probe selection", ""},
		{"  --capability <name>", "Builtin capability to probe (default: vosk)"},
		{"  -a, --all", "Probe every builtin capability"},
		{"  -m, --manifest <path>", "Probe capabilities from a YAML manifest"},
		{"  -c, --check", "Full runtime diagnostics (python, vosk, ffmpeg, models)"},
		{"", ""},
		{"Probed environment", ""},
		{"  --python <path>", "Python interpreter to probe (default: PATH discovery)"},
		{"  -e, --env <path>", "Dotenv file with backend settings (default: ./.env)"},
		{"", ""},
		{"Display", ""},
		{"  -j, --json", "Emit results as JSON"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
