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
	// DefaultCatalog is used when no catalog path is configured anywhere.
	DefaultCatalog = "destinos.json"
	// DefaultActivityLimit caps how many activities one query may select.
	DefaultActivityLimit = 6
)

// Config is the in-memory representation of ~/.destino/destino.yaml.
type Config struct {
	CatalogPath   string `yaml:"catalog_path"`
	ActivityLimit int    `yaml:"activity_limit,omitempty"`
	AllowSkip     bool   `yaml:"allow_skip,omitempty"`
	LogLevel      string `yaml:"log_level,omitempty"`
	LogFormat     string `yaml:"log_format,omitempty"`
}

// DestinoDir returns the absolute path to ~/.destino/.
func DestinoDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".destino"), nil
}

// ConfigPath returns the absolute path to ~/.destino/destino.yaml.
func ConfigPath() (string, error) {
	dir, err := DestinoDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "destino.yaml"), nil
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

// DefaultConfig returns the Config written by destino init.
func DefaultConfig() *Config {
	return &Config{
		CatalogPath:   DefaultCatalog,
		ActivityLimit: DefaultActivityLimit,
		LogLevel:      "warn",
		LogFormat:     "console",
	}
}

// Load reads and parses ~/.destino/destino.yaml. A missing file yields the
// defaults; a file that exists but cannot be parsed is an error.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	if cfg.ActivityLimit <= 0 {
		cfg.ActivityLimit = DefaultActivityLimit
	}
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = DefaultCatalog
	}
	return cfg, nil
}

// Save marshals cfg and writes it to ~/.destino/destino.yaml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

// ResolveCatalogPath picks the catalog to load: an explicit path (argument
// or flag) wins, then DESTINO_CATALOG from the environment or ~/.destino/.env,
// then the config file. The result has ~ expanded.
func ResolveCatalogPath(explicit string, cfg *Config) (string, error) {
	p := explicit
	if p == "" {
		v, err := GetConfigValue(EnvCatalog)
		if err != nil {
			return "", err
		}
		p = v
	}
	if p == "" && cfg != nil {
		p = cfg.CatalogPath
	}
	if p == "" {
		p = DefaultCatalog
	}
	return ExpandPath(p)
}
