// Package config provides fuxi configuration management,
// including reading and writing the per-user settings file.
package config

import (
	"runtime"

	fuxierrors "github.com/ImShyMike/fuxi/internal/errors"
)

// Config is the single settings record persisted to config.toml. It is
// loaded at the start of command execution, mutated in memory, and saved
// whole at the end of each mutating command.
type Config struct {
	Platform        string              `toml:"platform,omitempty"`
	SelectedProfile string              `toml:"selected_profile,omitempty"`
	Profiles        map[string][]string `toml:"profiles,omitempty"`
	LastBackupID    string              `toml:"last_backup_id,omitempty"`
	BackupRepoPath  string              `toml:"backup_repo_path,omitempty"`
	GithubRepo      string              `toml:"github_repo,omitempty"`
	GitBranch       string              `toml:"git_branch"`
}

// DefaultConfig returns the record used when no config file exists or the
// existing one cannot be parsed.
func DefaultConfig() *Config {
	return &Config{
		Platform:  runtime.GOOS,
		GitBranch: "main",
	}
}

// SelectedPaths returns the selected profile's path list. A missing
// selection, or a selection naming an unknown profile, yields an empty list
// rather than an error.
func (c *Config) SelectedPaths() []string {
	if c.SelectedProfile == "" || c.Profiles == nil {
		return nil
	}
	return c.Profiles[c.SelectedProfile]
}

// CreateProfile adds an empty profile. It reports false when the name is
// already taken (a benign no-op). The first profile ever created becomes the
// selected profile.
func (c *Config) CreateProfile(name string) bool {
	if c.Profiles == nil {
		c.Profiles = make(map[string][]string)
	}
	if _, exists := c.Profiles[name]; exists {
		return false
	}
	c.Profiles[name] = []string{}
	if len(c.Profiles) == 1 {
		c.SelectedProfile = name
	}
	return true
}

// SwitchProfile selects an existing profile
func (c *Config) SwitchProfile(name string) error {
	if _, exists := c.Profiles[name]; !exists {
		return fuxierrors.NewProfileNotFoundError(name)
	}
	c.SelectedProfile = name
	return nil
}

// DeleteProfile removes a profile, clearing the selection when it pointed at
// the deleted profile. It reports false when the profile does not exist.
func (c *Config) DeleteProfile(name string) bool {
	if _, exists := c.Profiles[name]; !exists {
		return false
	}
	delete(c.Profiles, name)
	if c.SelectedProfile == name {
		c.SelectedProfile = ""
	}
	return true
}

// AddPath appends a path to the selected profile's list, preserving
// insertion order. It reports false when the path is already present.
func (c *Config) AddPath(path string) (bool, error) {
	if c.SelectedProfile == "" {
		return false, fuxierrors.ErrNoProfileSelected
	}
	if c.Profiles == nil {
		c.Profiles = make(map[string][]string)
	}

	paths := c.Profiles[c.SelectedProfile]
	for _, p := range paths {
		if p == path {
			return false, nil
		}
	}
	c.Profiles[c.SelectedProfile] = append(paths, path)
	return true, nil
}

// RemovePath removes a path from the selected profile's list. It reports
// false when the path is not present.
func (c *Config) RemovePath(path string) (bool, error) {
	if c.SelectedProfile == "" {
		return false, fuxierrors.ErrNoProfileSelected
	}

	paths := c.Profiles[c.SelectedProfile]
	for i, p := range paths {
		if p == path {
			c.Profiles[c.SelectedProfile] = append(paths[:i], paths[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
