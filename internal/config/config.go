package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultShell interprets launch commands.
	DefaultShell = "sh"
	// DefaultMaxRows is the number of ranked rows the launcher shows at once.
	DefaultMaxRows = 12
)

// Config is the in-memory representation of ~/.launchkit/launchkit.yaml.
type Config struct {
	Shell     string   `yaml:"shell,omitempty"`
	ExtraDirs []string `yaml:"extra_dirs,omitempty"`
	MaxRows   int      `yaml:"max_rows,omitempty"`
	LogLevel  string   `yaml:"log_level,omitempty"`
}

// AppDir returns the absolute path to ~/.launchkit/.
func AppDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".launchkit"), nil
}

// ConfigPath returns the absolute path to ~/.launchkit/launchkit.yaml.
func ConfigPath() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "launchkit.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the Config written by launchkit init.
func DefaultConfig() *Config {
	return &Config{
		Shell:    DefaultShell,
		MaxRows:  DefaultMaxRows,
		LogLevel: "info",
	}
}

// Load reads path, or ~/.launchkit/launchkit.yaml when path is empty.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	cfg.applyDefaults()
	for i, d := range cfg.ExtraDirs {
		cfg.ExtraDirs[i], err = ExpandPath(d)
		if err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// Save marshals cfg and writes it to path, creating the parent directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(path), err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Shell) == "" {
		c.Shell = DefaultShell
	}
	if c.MaxRows <= 0 {
		c.MaxRows = DefaultMaxRows
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
