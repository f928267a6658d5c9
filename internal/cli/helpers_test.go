package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ImShyMike/fuxi/testhelpers"
)

// configureScene records an initialized setup: backup repository, GitHub
// remote, and a selected "work" profile holding the given paths.
func configureScene(t *testing.T, scene *testhelpers.Scene, paths ...string) {
	t.Helper()

	cfg := scene.Config()
	cfg.BackupRepoPath = scene.RepoDir
	cfg.GithubRepo = "alice/dotfiles"
	cfg.CreateProfile("work")
	for _, path := range paths {
		_, err := cfg.AddPath(path)
		require.NoError(t, err)
	}
	scene.SaveConfig(t, cfg)
}
