package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"milliseconds", "5ms", 5 * time.Millisecond, false},
		{"seconds", "2s", 2 * time.Second, false},
		{"invalid", "soon", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}
	if cfg.Tree.File != "" {
		t.Errorf("Tree.File = %v, want empty", cfg.Tree.File)
	}
	if cfg.Audio.WPM != 20 {
		t.Errorf("Audio.WPM = %v, want 20", cfg.Audio.WPM)
	}
	if cfg.Audio.ToneHz != 600 {
		t.Errorf("Audio.ToneHz = %v, want 600", cfg.Audio.ToneHz)
	}
	if cfg.Audio.SampleRate != 44100 {
		t.Errorf("Audio.SampleRate = %v, want 44100", cfg.Audio.SampleRate)
	}
	if cfg.Audio.Ramp.Duration != 5*time.Millisecond {
		t.Errorf("Audio.Ramp = %v, want 5ms", cfg.Audio.Ramp.Duration)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"morse.toml", FormatTOML},
		{"morse.yaml", FormatYAML},
		{"MORSE.YML", FormatYAML},
		{"morse.conf", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DetectFormat(tt.path); got != tt.want {
				t.Errorf("DetectFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "morse.toml")
	content := `
[general]
log_level = "debug"

[tree]
file = "trees/letters.txt"

[audio]
wpm = 25
farnsworth_wpm = 15
tone_hz = 700.0
ramp = "8ms"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if want := filepath.Join(dir, "trees/letters.txt"); cfg.Tree.File != want {
		t.Errorf("Tree.File = %v, want %v", cfg.Tree.File, want)
	}
	if cfg.Audio.WPM != 25 || cfg.Audio.FarnsworthWPM != 15 {
		t.Errorf("Audio wpm = %d/%d, want 25/15", cfg.Audio.WPM, cfg.Audio.FarnsworthWPM)
	}
	if cfg.Audio.ToneHz != 700 {
		t.Errorf("Audio.ToneHz = %v, want 700", cfg.Audio.ToneHz)
	}
	if cfg.Audio.Ramp.Duration != 8*time.Millisecond {
		t.Errorf("Audio.Ramp = %v, want 8ms", cfg.Audio.Ramp.Duration)
	}
	// untouched values keep their defaults
	if cfg.Audio.SampleRate != 44100 {
		t.Errorf("Audio.SampleRate = %v, want 44100", cfg.Audio.SampleRate)
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "morse.yaml")
	content := `
general:
  log_format: json
tree:
  file: /etc/morse/tree.txt
audio:
  volume: 0.25
  ramp: 3ms
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogFormat != "json" {
		t.Errorf("General.LogFormat = %v, want json", cfg.General.LogFormat)
	}
	if cfg.Tree.File != "/etc/morse/tree.txt" {
		t.Errorf("Tree.File = %v, want /etc/morse/tree.txt", cfg.Tree.File)
	}
	if cfg.Audio.Volume != 0.25 {
		t.Errorf("Audio.Volume = %v, want 0.25", cfg.Audio.Volume)
	}
	if cfg.Audio.Ramp.Duration != 3*time.Millisecond {
		t.Errorf("Audio.Ramp = %v, want 3ms", cfg.Audio.Ramp.Duration)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	broken := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(broken, []byte("[general\nlog_level="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("Load() of malformed TOML should fail")
	}

	invalid := filepath.Join(dir, "invalid.toml")
	if err := os.WriteFile(invalid, []byte("[audio]\nvolume = 3.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("Load() should reject volume outside [0, 1]")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"farnsworth slower than wpm", func(c *Config) { c.Audio.FarnsworthWPM = 10 }, false},
		{"farnsworth faster than wpm", func(c *Config) { c.Audio.FarnsworthWPM = 30 }, true},
		{"negative wpm", func(c *Config) { c.Audio.WPM = -1 }, true},
		{"tone above nyquist", func(c *Config) { c.Audio.ToneHz = 30000 }, true},
		{"negative volume", func(c *Config) { c.Audio.Volume = -0.1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env.toml")
	if err := os.WriteFile(path, []byte("[general]\nlog_level = \"info\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MORSE_CONFIG", path)
	t.Setenv("MORSE_LOG_LEVEL", "error")
	t.Setenv("MORSE_TREE_FILE", "/tmp/tree.txt")
	t.Setenv("MORSE_WPM", "12")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.LogLevel != "error" {
		t.Errorf("General.LogLevel = %v, want error (env wins)", cfg.General.LogLevel)
	}
	if cfg.Tree.File != "/tmp/tree.txt" {
		t.Errorf("Tree.File = %v, want /tmp/tree.txt", cfg.Tree.File)
	}
	if cfg.Audio.WPM != 12 {
		t.Errorf("Audio.WPM = %v, want 12", cfg.Audio.WPM)
	}
}
