// Package config provides configuration management for the throughput tester.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the throughput tester configuration.
type Config struct {
	Digitizer DigitizerConfig `yaml:"digitizer"`
	Frames    FrameConfig     `yaml:"frames"`
}

// DigitizerConfig describes the simulated digitizer.
type DigitizerConfig struct {
	ID         uint8  `yaml:"id"`
	Channels   int    `yaml:"channels"`
	SampleRate uint64 `yaml:"sample_rate"` // samples per second
}

// FrameConfig controls frame generation.
type FrameConfig struct {
	TimeBins   int    `yaml:"time_bins"`   // samples per channel per frame
	StartFrame uint32 `yaml:"start_frame"` // first frame number
	IntervalMS int    `yaml:"interval_ms"` // time between frames
	Count      int    `yaml:"count"`       // frames to send; 0 means run forever
}

// Default returns a default configuration matching the hardware the
// tester stands in for: 8 channels sampled at 1 GHz, 20000 bins per
// frame, one frame every 20 ms.
func Default() *Config {
	return &Config{
		Digitizer: DigitizerConfig{
			ID:         0,
			Channels:   8,
			SampleRate: 1_000_000_000,
		},
		Frames: FrameConfig{
			TimeBins:   20000,
			StartFrame: 0,
			IntervalMS: 20,
			Count:      0,
		},
	}
}

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".trace-throughput-tester", "config.yaml")
}

// Load loads the configuration from a file.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save saves the configuration to a file.
func Save(path string, cfg *Config) error {
	if path == "" {
		path = DefaultPath()
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the codec would refuse at encode time.
func (c *Config) Validate() error {
	if c.Digitizer.SampleRate == 0 {
		return fmt.Errorf("digitizer.sample_rate must be non-zero")
	}
	if c.Digitizer.Channels < 0 {
		return fmt.Errorf("digitizer.channels must not be negative")
	}
	if c.Frames.TimeBins < 0 {
		return fmt.Errorf("frames.time_bins must not be negative")
	}
	if c.Frames.IntervalMS <= 0 {
		return fmt.Errorf("frames.interval_ms must be positive")
	}
	return nil
}
