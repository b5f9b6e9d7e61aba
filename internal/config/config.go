// ABOUTME: Configuration management with backend selection.
// ABOUTME: JSON config file, .env loading, and FITPLAN_* env overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/corefit/fitplan/internal/kv"
	"github.com/corefit/fitplan/internal/storage"
)

// Config stores fitplan configuration. File values come from the JSON
// config; FITPLAN_* environment variables (including a local .env file)
// override them.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or "badger".
	Backend string `json:"backend,omitempty" env:"FITPLAN_BACKEND"`

	// DataDir is the root directory for data storage. SQLite puts
	// fitplan.db here, Badger its key-value directory. Supports ~ expansion.
	DataDir string `json:"data_dir,omitempty" env:"FITPLAN_DATA_DIR"`

	// DefaultUser is the user ID assumed when --user is not given.
	DefaultUser string `json:"default_user,omitempty" env:"FITPLAN_USER"`

	// StepGoal and WaterGoalML are the daily targets for progress ratios.
	StepGoal    int `json:"step_goal,omitempty" env:"FITPLAN_STEP_GOAL"`
	WaterGoalML int `json:"water_goal_ml,omitempty" env:"FITPLAN_WATER_GOAL_ML"`

	// CloudSync mirrors writes to Charm Cloud when true.
	CloudSync bool `json:"cloud_sync,omitempty" env:"FITPLAN_CLOUD_SYNC"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDefaultUser returns the configured default user, falling back to the
// OS username.
func (c *Config) GetDefaultUser() string {
	if c.DefaultUser != "" {
		return c.DefaultUser
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "default"
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the configured
// backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	dataDir := c.GetDataDir()

	switch backend := c.GetBackend(); backend {
	case "sqlite":
		return storage.Open(filepath.Join(dataDir, "fitplan.db"))
	case "badger":
		return kv.Open(filepath.Join(dataDir, "kv"))
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// OpenBackend opens a named backend regardless of configuration. Used by
// the migrate command to copy between stores.
func (c *Config) OpenBackend(backend string) (storage.Repository, error) {
	dataDir := c.GetDataDir()
	switch backend {
	case "sqlite":
		return storage.Open(filepath.Join(dataDir, "fitplan.db"))
	case "badger":
		return kv.Open(filepath.Join(dataDir, "kv"))
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fitplan", "config.json")
}

// Load reads config from disk, applies a local .env file if present, and
// then FITPLAN_* environment overrides.
func Load() (*Config, error) {
	// Missing .env is fine; explicit values in the environment win.
	_ = godotenv.Load()

	var cfg Config
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
