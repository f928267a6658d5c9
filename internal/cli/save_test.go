package cli_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	fuxierrors "github.com/ImShyMike/fuxi/internal/errors"
	"github.com/ImShyMike/fuxi/testhelpers"
)

func TestSaveCommitsAndPushes(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t)
	configureScene(t, scene)
	scene.Confirm.Script(true)
	scene.Runner.Stub("git status --porcelain", testhelpers.RunnerResult{Stdout: "?? work/hosts\n"})

	out, err := scene.Run(t, "save")

	require.NoError(t, err)
	require.Contains(t, out, "Pushing to GitHub...")
	require.Contains(t, out, "Successfully pushed to GitHub!")
	require.Contains(t, out, "Configuration saved successfully!")

	require.Len(t, scene.Confirm.Prompts, 1)
	require.Contains(t, scene.Confirm.Prompts[0], "save the current configuration state")
	require.Contains(t, scene.Runner.Commands(), "git commit -m Save configuration")
	require.Contains(t, scene.Runner.Commands(), "git push origin main")
}

func TestSaveCancelled(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t)
	configureScene(t, scene)
	scene.Confirm.Script(false)

	out, err := scene.Run(t, "save")

	require.NoError(t, err)
	require.Contains(t, out, "Save cancelled.")
	require.Empty(t, scene.Runner.Commands(), "cancelling must not touch the repository")
}

func TestSaveForceSkipsConfirmation(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t)
	configureScene(t, scene)
	scene.Runner.Stub("git status --porcelain", testhelpers.RunnerResult{Stdout: " M config\n"})

	_, err := scene.Run(t, "save", "--force")

	require.NoError(t, err)
	require.Empty(t, scene.Confirm.Prompts)
	require.Contains(t, scene.Runner.Commands(), "git push origin main")
}

func TestSaveHonorsCustomMessage(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t)
	configureScene(t, scene)
	scene.Runner.Stub("git status --porcelain", testhelpers.RunnerResult{Stdout: " M config\n"})

	_, err := scene.Run(t, "save", "--force", "--message", "weekly checkpoint")

	require.NoError(t, err)
	require.Contains(t, scene.Runner.Commands(), "git commit -m weekly checkpoint")
}

func TestSaveCleanTreeReportsNoChanges(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t)
	configureScene(t, scene)

	out, err := scene.Run(t, "save", "--force")

	require.NoError(t, err)
	require.Contains(t, out, "No changes to commit.")
	require.Contains(t, out, "Configuration saved successfully!")
	require.Equal(t, []string{"git add .", "git status --porcelain"}, scene.Runner.Commands())
}

func TestSavePushFailureIsReported(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t)
	configureScene(t, scene)
	scene.Runner.Stub("git status --porcelain", testhelpers.RunnerResult{Stdout: " M config\n"})
	scene.Runner.Stub("git push origin main", testhelpers.RunnerResult{
		Stderr: "fatal: could not read from remote repository",
		Err:    errors.New("exit status 128"),
	})

	out, err := scene.Run(t, "save", "--force")

	require.NoError(t, err)
	require.Contains(t, out, "Error during push:")
	require.NotContains(t, out, "Configuration saved successfully!")
}

func TestSaveRequiresConfiguredRepo(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t)

	_, err := scene.Run(t, "save", "--force")

	require.ErrorIs(t, err, fuxierrors.ErrRepoNotConfigured)
}
