package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// The defaults mirror the paths the appliance image is built with; a
// config file only needs to override what differs on a given board.
type Config struct {
	Device struct {
		Path       string `yaml:"path"`       // Block device node to wait for
		Filesystem string `yaml:"filesystem"` // Filesystem type hint passed to mount
	} `yaml:"device"`
	Mount struct {
		Path string `yaml:"path"` // Directory the device is mounted on
	} `yaml:"mount"`
	Listing struct {
		Enabled bool     `yaml:"enabled"` // List the mount root after mounting
		Ignore  []string `yaml:"ignore"`  // Glob patterns for entries to skip
	} `yaml:"listing"`
	Settings struct {
		TickIntervalMs int  `yaml:"tick_interval_ms"` // Sleep between ticks (0 = spin)
		Debug          bool `yaml:"debug"`            // Emit the state-transition trace
	} `yaml:"settings"`
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Device.Path = "/dev/sda1"
	cfg.Device.Filesystem = "vfat"
	cfg.Mount.Path = "/mnt/usb"
	cfg.Listing.Enabled = true
	cfg.Settings.TickIntervalMs = 1
	cfg.Settings.Debug = true
	return cfg
}

// LoadConfig loads configuration from the default location
// (~/.config/mountls/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "mountls", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal over the defaults; fields absent from the document keep
	// their default values.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given path, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
