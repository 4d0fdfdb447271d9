// ============================================================================
// morsetree - Morse code over binary code trees
// ============================================================================
//
// Package:     config
// Description: TOML/YAML configuration with environment overrides
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Tree    TreeConfig    `toml:"tree" yaml:"tree"`
	Audio   AudioConfig   `toml:"audio" yaml:"audio"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// TreeConfig selects the code tree definition
type TreeConfig struct {
	// File is a one-line tree definition; empty selects the built-in tree
	File string `toml:"file" yaml:"file"`
}

// AudioConfig holds keying and synthesis settings for morse play
type AudioConfig struct {
	WPM           int      `toml:"wpm" yaml:"wpm"`
	FarnsworthWPM int      `toml:"farnsworth_wpm" yaml:"farnsworth_wpm"`
	ToneHz        float64  `toml:"tone_hz" yaml:"tone_hz"`
	SampleRate    int      `toml:"sample_rate" yaml:"sample_rate"`
	Volume        float64  `toml:"volume" yaml:"volume"`
	Ramp          Duration `toml:"ramp" yaml:"ramp"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Format is the on-disk encoding of a config file
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat picks the format from the file extension, defaulting to TOML
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data, DetectFormat(path))
	if err != nil {
		return nil, err
	}

	// Relative tree paths are resolved against the config file
	if cfg.Tree.File != "" && !filepath.IsAbs(cfg.Tree.File) {
		cfg.Tree.File = filepath.Join(filepath.Dir(path), cfg.Tree.File)
	}

	return cfg, nil
}

// Parse decodes configuration content in the given format and applies defaults
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from MORSE_CONFIG or the default locations.
// Without any config file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("MORSE_CONFIG")
	if path == "" {
		defaultPaths := []string{
			"./morse.toml",
			"./morse.yaml",
		}
		if home, err := os.UserHomeDir(); err == nil {
			defaultPaths = append(defaultPaths,
				filepath.Join(home, ".config/morsetree/config.toml"),
				filepath.Join(home, ".config/morsetree/config.yaml"),
			)
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	var cfg *Config
	if path == "" {
		cfg = Default()
	} else {
		var err error
		cfg, err = Load(path)
		if err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables
func (c *Config) ApplyEnv() {
	if v := os.Getenv("MORSE_TREE_FILE"); v != "" {
		c.Tree.File = v
	}
	if v := os.Getenv("MORSE_LOG_LEVEL"); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv("MORSE_LOG_FORMAT"); v != "" {
		c.General.LogFormat = v
	}
	if v := os.Getenv("MORSE_WPM"); v != "" {
		if wpm, err := strconv.Atoi(v); err == nil && wpm > 0 {
			c.Audio.WPM = wpm
		}
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Audio
	if c.Audio.WPM == 0 {
		c.Audio.WPM = 20
	}
	if c.Audio.ToneHz == 0 {
		c.Audio.ToneHz = 600
	}
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 44100
	}
	if c.Audio.Volume == 0 {
		c.Audio.Volume = 0.5
	}
	if c.Audio.Ramp.Duration == 0 {
		c.Audio.Ramp.Duration = 5 * time.Millisecond
	}
}

// Validate checks value ranges after defaults are applied
func (c *Config) Validate() error {
	if c.Audio.WPM < 1 {
		return fmt.Errorf("audio.wpm must be positive, got %d", c.Audio.WPM)
	}
	if c.Audio.FarnsworthWPM < 0 || c.Audio.FarnsworthWPM > c.Audio.WPM {
		return fmt.Errorf("audio.farnsworth_wpm must be between 0 and wpm (%d), got %d", c.Audio.WPM, c.Audio.FarnsworthWPM)
	}
	if c.Audio.ToneHz <= 0 || c.Audio.ToneHz*2 >= float64(c.Audio.SampleRate) {
		return fmt.Errorf("audio.tone_hz %.1f must be positive and below half the sample rate", c.Audio.ToneHz)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0, 1], got %.2f", c.Audio.Volume)
	}
	return nil
}
