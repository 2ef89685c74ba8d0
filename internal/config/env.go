package config

// This file loads backend settings from a dotenv file. The probed system is
// a Python transcription backend whose deployment settings (interpreter,
// model path, library path) live in a .env next to the service. Loading it
// lets the probe see the same environment the backend would.

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables recognized after dotenv loading. CLI flags take
// precedence; env values only fill fields the user left unset.
const (
	EnvPython     = "SPEECHPROBE_PYTHON"
	EnvPythonBin  = "PYTHON_BIN"
	EnvModelPath  = "VOSK_MODEL_PATH"
	EnvLibraryDir = "VOSK_LIBRARY_PATH"
)

// LoadEnv loads the dotenv file (explicit --env path, or ./.env when
// present) and fills unset Config fields from the environment. An explicit
// --env path that cannot be loaded is an error; a missing ./.env is not.
func LoadEnv(cfg *Config) error {
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil {
			return fmt.Errorf("load env file %s: %w", cfg.EnvFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("load .env: %w", err)
		}
	}

	if cfg.PythonPath == "" {
		cfg.PythonPath = firstEnv(EnvPython, EnvPythonBin)
	}
	if cfg.ModelDir == "" {
		cfg.ModelDir = os.Getenv(EnvModelPath)
	}
	if cfg.LibraryDir == "" {
		cfg.LibraryDir = os.Getenv(EnvLibraryDir)
	}
	return nil
}

// firstEnv returns the first non-empty value among the named variables.
func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
