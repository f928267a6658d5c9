package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ImShyMike/fuxi/testhelpers"
)

// TestFullBackupJourney drives the whole workflow against a real git binary:
// init, profile and path setup, backup, save to a local bare remote, list,
// drift and restore with apply.
func TestFullBackupJourney(t *testing.T) {
	clearGitHubToken(t)

	scene := testhelpers.NewGitScene(t)
	hosts := scene.WriteLiveFile(t, "hosts", "127.0.0.1 localhost\n")

	_, err := scene.Run(t, "init", "alice/dotfiles", scene.RepoDir)
	require.NoError(t, err)
	require.True(t, testhelpers.IsRepo(scene.RepoDir))

	_, err = scene.Run(t, "profile", "create", "work")
	require.NoError(t, err)
	_, err = scene.Run(t, "path", "add", hosts)
	require.NoError(t, err)

	// Nothing committed yet.
	out, err := scene.Run(t, "list")
	require.NoError(t, err)
	require.Equal(t, "No backups found.\n", out)

	out, err = scene.Run(t, "backup")
	require.NoError(t, err)
	require.Contains(t, out, "created successfully!")
	require.FileExists(t, filepath.Join(scene.RepoDir, "work", "hosts"))

	// Point origin at a local bare repository so the push stays offline.
	repo := &testhelpers.GitRepo{Dir: scene.RepoDir}
	bare := filepath.Join(scene.Dir, "remote.git")
	repo.Git(t, "init", "--bare", bare)
	repo.Git(t, "remote", "set-url", "origin", bare)
	repo.Git(t, "config", "user.name", "Test User")
	repo.Git(t, "config", "user.email", "test@example.com")

	out, err = scene.Run(t, "save", "--force")
	require.NoError(t, err)
	require.Contains(t, out, "Successfully pushed to GitHub!")
	require.Contains(t, out, "Configuration saved successfully!")
	require.Equal(t, 1, repo.CommitCount(t))
	require.Equal(t, "Save configuration", repo.HeadMessage(t))

	out, err = scene.Run(t, "list")
	require.NoError(t, err)
	require.Contains(t, out, "Backups:")
	require.Contains(t, out, "Save configuration")

	// Drift the live file, then restore it from the backup.
	require.NoError(t, os.WriteFile(hosts, []byte("drifted\n"), 0o644))

	out, err = scene.Run(t, "apply", "latest")
	require.NoError(t, err)
	require.Contains(t, out, "applied successfully!")

	content, err := os.ReadFile(hosts)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1 localhost\n", string(content))
}
