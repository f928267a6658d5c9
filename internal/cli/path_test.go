package cli_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	fuxierrors "github.com/ImShyMike/fuxi/internal/errors"
	"github.com/ImShyMike/fuxi/testhelpers"
)

func TestPathAdd(t *testing.T) {
	t.Parallel()

	t.Run("adds paths to the selected profile", func(t *testing.T) {
		t.Parallel()

		scene := testhelpers.NewScene(t)
		_, err := scene.Run(t, "profile", "create", "work")
		require.NoError(t, err)

		out, err := scene.Run(t, "path", "add", "/etc/hosts", "/etc/nginx")

		require.NoError(t, err)
		require.Contains(t, out, "Added: /etc/hosts")
		require.Contains(t, out, "Added: /etc/nginx")
		require.Contains(t, out, "Configuration updated successfully!")
		require.Equal(t, []string{"/etc/hosts", "/etc/nginx"}, scene.Config().SelectedPaths())
	})

	t.Run("duplicate path is reported and kept once", func(t *testing.T) {
		t.Parallel()

		scene := testhelpers.NewScene(t)
		_, err := scene.Run(t, "profile", "create", "work")
		require.NoError(t, err)
		_, err = scene.Run(t, "path", "add", "/etc/hosts")
		require.NoError(t, err)

		out, err := scene.Run(t, "path", "add", "/etc/hosts")

		require.NoError(t, err)
		require.Contains(t, out, "Path already exists: /etc/hosts")
		require.Equal(t, []string{"/etc/hosts"}, scene.Config().SelectedPaths())
	})

	t.Run("without a selected profile nothing is written", func(t *testing.T) {
		t.Parallel()

		scene := testhelpers.NewScene(t)
		cfg := scene.Config()
		cfg.GithubRepo = "alice/dotfiles"
		scene.SaveConfig(t, cfg)

		before, err := os.ReadFile(scene.Store.Path())
		require.NoError(t, err)

		out, runErr := scene.Run(t, "path", "add", "/etc/hosts")

		require.NoError(t, runErr)
		require.Contains(t, out, "Please select a profile before adding paths.")

		after, err := os.ReadFile(scene.Store.Path())
		require.NoError(t, err)
		require.Equal(t, string(before), string(after), "config file must stay untouched")
	})
}

func TestPathRemove(t *testing.T) {
	t.Parallel()

	t.Run("removes a configured path", func(t *testing.T) {
		t.Parallel()

		scene := testhelpers.NewScene(t)
		_, err := scene.Run(t, "profile", "create", "work")
		require.NoError(t, err)
		_, err = scene.Run(t, "path", "add", "/etc/hosts", "/etc/nginx")
		require.NoError(t, err)

		out, err := scene.Run(t, "path", "remove", "/etc/hosts")

		require.NoError(t, err)
		require.Contains(t, out, "Removed: /etc/hosts")
		require.Contains(t, out, "Configuration updated successfully!")
		require.Equal(t, []string{"/etc/nginx"}, scene.Config().SelectedPaths())
	})

	t.Run("missing path is reported without error", func(t *testing.T) {
		t.Parallel()

		scene := testhelpers.NewScene(t)
		_, err := scene.Run(t, "profile", "create", "work")
		require.NoError(t, err)

		out, err := scene.Run(t, "path", "remove", "/missing")

		require.NoError(t, err)
		require.Contains(t, out, "Path not found: /missing")
	})

	t.Run("without a selected profile it fails", func(t *testing.T) {
		t.Parallel()

		scene := testhelpers.NewScene(t)

		_, err := scene.Run(t, "path", "remove", "/etc/hosts")

		require.ErrorIs(t, err, fuxierrors.ErrNoProfileSelected)
	})
}

func TestPathList(t *testing.T) {
	t.Parallel()

	t.Run("no paths configured", func(t *testing.T) {
		t.Parallel()

		scene := testhelpers.NewScene(t)

		out, err := scene.Run(t, "path", "list")

		require.NoError(t, err)
		require.Equal(t, "No paths configured.\n", out)
	})

	t.Run("paths print numbered in insertion order", func(t *testing.T) {
		t.Parallel()

		scene := testhelpers.NewScene(t)
		_, err := scene.Run(t, "profile", "create", "work")
		require.NoError(t, err)
		_, err = scene.Run(t, "path", "add", "/etc/hosts", "/home/alice/.bashrc")
		require.NoError(t, err)

		out, err := scene.Run(t, "path", "list")

		require.NoError(t, err)
		require.Equal(t, "Configured paths:\n  1: /etc/hosts\n  2: /home/alice/.bashrc\n", out)
	})
}
