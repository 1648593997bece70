package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/jsonstore/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvProvider(t *testing.T) {
	t.Setenv("JSONSTORE_TEST_ROOT", "")
	_, err := paths.EnvProvider{Var: "JSONSTORE_TEST_ROOT"}.DefaultRoot()
	assert.Error(t, err)

	dir := t.TempDir()
	t.Setenv("JSONSTORE_TEST_ROOT", dir)
	got, err := paths.EnvProvider{Var: "JSONSTORE_TEST_ROOT"}.DefaultRoot()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestXDGProvider(t *testing.T) {
	dataHome := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_DATA_HOME", dataHome)
	xdg.Reload()

	got, err := paths.XDGProvider{AppName: "myapp"}.DefaultRoot()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "myapp"), got)
}

func TestExecutableProvider(t *testing.T) {
	exe, err := os.Executable()
	require.NoError(t, err)

	got, err := paths.ExecutableProvider{Dir: "data"}.DefaultRoot()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(exe), "data"), got)
}

func TestChainProvider(t *testing.T) {
	dir := t.TempDir()

	got, err := paths.ChainProvider{paths.StaticProvider(""), paths.StaticProvider(dir)}.DefaultRoot()
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	_, err = paths.ChainProvider{paths.StaticProvider("")}.DefaultRoot()
	assert.ErrorContains(t, err, "no default root available")
}

func TestDefaultProvider_PrefersEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.EnvDataDir, dir)

	got, err := paths.DefaultProvider(paths.DefaultAppName).DefaultRoot()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestDefaultProvider_FallsBackToXDG(t *testing.T) {
	dataHome := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv(paths.EnvDataDir, "")
	t.Setenv("XDG_DATA_HOME", dataHome)
	xdg.Reload()

	got, err := paths.DefaultProvider(paths.DefaultAppName).DefaultRoot()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, paths.DefaultAppName), got)
}
