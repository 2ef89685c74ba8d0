package config

import (
	"testing"
)

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Capability(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capability = "   "
	if err := cfg.Validate(); err == nil {
		t.Error("blank capability must fail validation")
	}
}

func TestValidate_ModeConflicts(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"check alone", func(c *Config) { c.CheckOnly = true }, false},
		{"check with json", func(c *Config) { c.CheckOnly = true; c.JSONOutput = true }, true},
		{"check with all", func(c *Config) { c.CheckOnly = true; c.ProbeAll = true }, true},
		{"check with manifest", func(c *Config) { c.CheckOnly = true; c.ManifestPath = "caps.yaml" }, true},
		{"all with manifest", func(c *Config) { c.ProbeAll = true; c.ManifestPath = "caps.yaml" }, true},
		{"all with json", func(c *Config) { c.ProbeAll = true; c.JSONOutput = true }, false},
		{"manifest alone", func(c *Config) { c.ManifestPath = "caps.yaml" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Capability != "vosk" {
		t.Errorf("default capability = %q, want %q", cfg.Capability, "vosk")
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default color mode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
}
