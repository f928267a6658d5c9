package cli_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ImShyMike/fuxi/testhelpers"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t)

	out, err := scene.Run(t, "version")

	require.NoError(t, err)
	require.Equal(t, "fuxi version test\n", out)
}

func TestConfigShowsPath(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t)

	out, err := scene.Run(t, "config")

	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("Configuration file: %q\n", scene.Store.Path()), out)
}

func TestConfigRawShowsBarePath(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t)

	out, err := scene.Run(t, "config", "--raw")

	require.NoError(t, err)
	require.Equal(t, scene.Store.Path()+"\n", out)
}

func TestUnknownCommandFails(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t)

	_, err := scene.Run(t, "destroy")

	require.Error(t, err)
}
