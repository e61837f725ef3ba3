package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store backends
const (
	StoreSQLite = "sqlite"
	StoreJSON   = "json"
)

const (
	dirName  = ".jmap"
	fileName = "config.yaml"
)

// Config represents the jmap configuration.
type Config struct {
	Version      string    `yaml:"version"`
	Store        string    `yaml:"store"`                   // "sqlite" or "json"
	DatabasePath string    `yaml:"database_path,omitempty"` // sqlite file
	SnapshotPath string    `yaml:"snapshot_path,omitempty"` // json snapshot file
	ExportDir    string    `yaml:"export_dir,omitempty"`
	Log          LogConfig `yaml:"log"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Mode  string `yaml:"mode"`  // development or production
}

// Default returns the configuration used when no file exists, rooted at dir.
func Default(dir string) *Config {
	root := filepath.Join(dir, dirName)
	return &Config{
		Version:      "1",
		Store:        StoreSQLite,
		DatabasePath: filepath.Join(root, "jmap.db"),
		SnapshotPath: filepath.Join(root, "snapshot.json"),
		ExportDir:    filepath.Join(dir, "exports"),
		Log: LogConfig{
			Level: "warn",
			Mode:  "development",
		},
	}
}

// LoadConfig reads .jmap/config.yaml from dir.
// Missing fields take their Default values; env overrides apply last.
// Returns an error wrapping os.ErrNotExist when there is no config file.
func LoadConfig(dir string) (*Config, error) {
	path := Path(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default(dir)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is LoadConfig falling back to Default when no file exists.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default(dir)
		applyEnv(cfg)
		return cfg, cfg.Validate()
	}
	return cfg, err
}

// SaveConfig writes config.yaml to dir/.jmap.
func SaveConfig(dir string, cfg *Config) error {
	root := filepath.Join(dir, dirName)
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", dirName, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Path returns the config file location for dir.
func Path(dir string) string {
	return filepath.Join(dir, dirName, fileName)
}

// Validate rejects unknown store backends.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreSQLite, StoreJSON:
		return nil
	}
	return fmt.Errorf("unknown store %q (want %s or %s)", c.Store, StoreSQLite, StoreJSON)
}

func applyEnv(cfg *Config) {
	cfg.Store = getenv("JMAP_STORE", cfg.Store)
	cfg.DatabasePath = getenv("JMAP_DB", cfg.DatabasePath)
	cfg.SnapshotPath = getenv("JMAP_SNAPSHOT", cfg.SnapshotPath)
	cfg.ExportDir = getenv("JMAP_EXPORT_DIR", cfg.ExportDir)
	cfg.Log.Level = getenv("JMAP_LOG_LEVEL", cfg.Log.Level)
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
