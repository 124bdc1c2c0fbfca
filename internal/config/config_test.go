package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches the working directory for one test. Resolution reads
// config.ini and .env relative to the working directory.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(old)
	})
}

func TestResolveRootPathFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(RootPathEnv, "/data/camels_de")

	root, err := ResolveRootPath()
	require.NoError(t, err)
	assert.Equal(t, "/data/camels_de", root)
}

func TestResolveRootPathEnvWinsOverConfigFile(t *testing.T) {
	dir := t.TempDir()
	ini := "[CAMELS_DE]\nCAMELS_ROOT_PATH = /from/config/file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.ini"), []byte(ini), 0644))
	chdir(t, dir)
	t.Setenv(RootPathEnv, "/from/env")

	root, err := ResolveRootPath()
	require.NoError(t, err)
	assert.Equal(t, "/from/env", root)
}

func TestResolveRootPathFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	ini := "[CAMELS_DE]\nCAMELS_ROOT_PATH = /from/config/file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.ini"), []byte(ini), 0644))
	chdir(t, dir)
	t.Setenv(RootPathEnv, "")

	root, err := ResolveRootPath()
	require.NoError(t, err)
	assert.Equal(t, "/from/config/file", root)
}

func TestResolveRootPathFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CAMELS_ROOT_PATH=/from/dotenv\n"), 0644))
	chdir(t, dir)
	t.Setenv(RootPathEnv, "")
	// godotenv does not overwrite existing variables; clear it entirely.
	require.NoError(t, os.Unsetenv(RootPathEnv))

	root, err := ResolveRootPath()
	require.NoError(t, err)
	assert.Equal(t, "/from/dotenv", root)
}

func TestResolveRootPathUnset(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(RootPathEnv, "")

	_, err := ResolveRootPath()
	assert.ErrorIs(t, err, ErrRootPathNotSet)
}

func TestResolveRootPathConfigFileWithoutKey(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.ini"), []byte("[CAMELS_DE]\nother = x\n"), 0644))
	chdir(t, dir)
	t.Setenv(RootPathEnv, "")

	_, err := ResolveRootPath()
	assert.ErrorIs(t, err, ErrRootPathNotSet)
}

func TestPaths(t *testing.T) {
	root := filepath.Join("/data", "camels_de")

	assert.Equal(t,
		filepath.Join(root, "CAMELS_DE_soil_attributes.csv"),
		AttributesPath(root, "soil"))
	assert.Equal(t,
		filepath.Join(root, "timeseries", "CAMELS_DE_hydromet_timeseries_DE110000.csv"),
		TimeseriesPath(root, "DE110000"))
	assert.Equal(t,
		filepath.Join(root, "CAMELS_DE_catchment_boundaries.geojson"),
		CatchmentsPath(root))
	assert.Equal(t,
		filepath.Join(root, "CAMELS_DE_gauging_stations.geojson"),
		StationLocationsPath(root))
}
