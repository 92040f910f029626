package termnav

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds termnav preferences. It never records where the user
// navigated.
type Config struct {
	Results    int      `yaml:"results"`
	ShowHidden bool     `yaml:"show_hidden"`
	NoIndex    bool     `yaml:"no_index"`
	Force      bool     `yaml:"force"`
	Simple     bool     `yaml:"simple"`
	Exclude    []string `yaml:"exclude,omitempty"`
	LogFile    string   `yaml:"log_file,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Results: 10,
	}
}

// Indexed reports whether labels get their "[i] " prefix. Simple mode
// drops the prefix as well as the header.
func (c *Config) Indexed() bool {
	return !c.NoIndex && !c.Simple
}

// Validate checks values that would otherwise fail deep inside the UI.
func (c *Config) Validate() error {
	if c.Results < 1 {
		return fmt.Errorf("results must be at least 1, got %d", c.Results)
	}
	if _, err := compileExcludes(c.Exclude); err != nil {
		return err
	}
	return nil
}

// ConfigPath returns the default config file path.
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".termnav", "config.yaml")
}

// LoadConfig reads config from file, falling back to defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TERMNAV_RESULTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("TERMNAV_RESULTS: %w", err)
		}
		cfg.Results = n
	}
	if v := os.Getenv("TERMNAV_LOG"); v != "" {
		cfg.LogFile = v
	}

	return cfg, nil
}

// SaveConfig writes config to the given path.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// ConfigFileExists reports whether the config file exists at the given path.
func ConfigFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
