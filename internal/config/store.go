package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Store reads and writes the settings file at a fixed location.
type Store struct {
	path string
}

// NewStore resolves the per-user config location, <user-config-dir>/fuxi/config.toml
func NewStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("could not determine config directory: %w", err)
	}
	return &Store{path: filepath.Join(dir, "fuxi", "config.toml")}, nil
}

// NewStoreAt creates a Store over an explicit file path
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the config file location
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file. It never fails the caller: a missing or
// malformed file yields the default record.
func (s *Store) Load() *Config {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(s.path, cfg); err != nil {
		return DefaultConfig()
	}
	if cfg.GitBranch == "" {
		cfg.GitBranch = "main"
	}
	return cfg
}

// Save persists the whole record, creating the config directory on demand.
// The file is written to a temp name and renamed into place so readers never
// observe a partial write.
func (s *Store) Save(cfg *Config) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "config-*.toml")
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write config: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
