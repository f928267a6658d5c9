package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	store := NewStoreAt(filepath.Join(t.TempDir(), "config.toml"))

	cfg := store.Load()

	require.Equal(t, runtime.GOOS, cfg.Platform)
	require.Equal(t, "main", cfg.GitBranch)
	require.Empty(t, cfg.Profiles)
}

func TestLoadCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("selected_profile = [not valid"), 0o644))

	cfg := NewStoreAt(path).Load()

	require.Equal(t, "main", cfg.GitBranch)
	require.Empty(t, cfg.SelectedProfile)
}

func TestLoadBackfillsGitBranch(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("selected_profile = \"work\"\n"), 0o644))

	cfg := NewStoreAt(path).Load()

	require.Equal(t, "work", cfg.SelectedProfile)
	require.Equal(t, "main", cfg.GitBranch)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStoreAt(filepath.Join(t.TempDir(), "config.toml"))

	cfg := DefaultConfig()
	cfg.CreateProfile("work")
	_, err := cfg.AddPath("/etc/hosts")
	require.NoError(t, err)
	_, err = cfg.AddPath("/home/alice/.bashrc")
	require.NoError(t, err)
	cfg.BackupRepoPath = "/home/alice/backups"
	cfg.GithubRepo = "alice/dotfiles"
	cfg.LastBackupID = "backup_20260101_120000"

	require.NoError(t, store.Save(cfg))

	loaded := store.Load()
	require.Equal(t, "work", loaded.SelectedProfile)
	require.Equal(t, []string{"/etc/hosts", "/home/alice/.bashrc"}, loaded.SelectedPaths())
	require.Equal(t, "/home/alice/backups", loaded.BackupRepoPath)
	require.Equal(t, "alice/dotfiles", loaded.GithubRepo)
	require.Equal(t, "backup_20260101_120000", loaded.LastBackupID)
	require.Equal(t, "main", loaded.GitBranch)
}

func TestSaveCreatesConfigDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "fuxi", "config.toml")
	store := NewStoreAt(path)

	require.NoError(t, store.Save(DefaultConfig()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.False(t, info.IsDir())
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewStoreAt(filepath.Join(dir, "config.toml"))

	require.NoError(t, store.Save(DefaultConfig()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "config.toml", entries[0].Name())
}

func TestPath(t *testing.T) {
	t.Parallel()

	store := NewStoreAt("/tmp/custom/config.toml")

	require.Equal(t, "/tmp/custom/config.toml", store.Path())
}
