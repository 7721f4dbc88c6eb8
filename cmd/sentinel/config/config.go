// Package config loads user preferences for the PortSentinel console.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences
type Config struct {
	APIBaseURL string `yaml:"api_base_url"` // summary service endpoint
	Theme      string `yaml:"theme"`        // "light", "dark" or "auto"
	IncidentID string `yaml:"incident_id"`  // incident targeted by diagnostics
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		APIBaseURL: "http://localhost:8000",
		Theme:      "auto",
		IncidentID: "INC-TEST-001",
	}
}

// ConfigDir returns the directory where config is stored
func ConfigDir() (string, error) {
	// Prefer a project-local .portsentinel directory if present
	if cwd, err := os.Getwd(); err == nil {
		localDir := filepath.Join(cwd, ".portsentinel")
		if stat, err := os.Stat(localDir); err == nil && stat.IsDir() {
			return localDir, nil
		}
	}

	// Fallback to home-level config
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".portsentinel"), nil
}

// ConfigFile returns the full path to the config file
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from disk and applies environment
// overrides. A missing file is not an error; defaults apply.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigFile()
	if err != nil {
		return applyEnv(cfg), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return applyEnv(cfg), nil
	}
	if err != nil {
		return applyEnv(cfg), err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return applyEnv(DefaultConfig()), err
	}
	return applyEnv(cfg), nil
}

// applyEnv lets PORTSENTINEL_* variables override file values.
func applyEnv(cfg Config) Config {
	if v := os.Getenv("PORTSENTINEL_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("PORTSENTINEL_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("PORTSENTINEL_INCIDENT_ID"); v != "" {
		cfg.IncidentID = v
	}
	return cfg
}

// Save writes the configuration to disk
func Save(cfg Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigFile()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
