package camelsde

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camels-de/camelsde-go/internal/config"
)

func TestResolveRootPath(t *testing.T) {
	root := writeDataset(t)
	t.Setenv(config.RootPathEnv, root)

	got, err := ResolveRootPath()
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestTopLevelGaugeIDIsValid(t *testing.T) {
	t.Setenv(config.RootPathEnv, writeDataset(t))

	valid, err := GaugeIDIsValid("DE110010")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = GaugeIDIsValid("DE999999")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestTopLevelGetTimeseries(t *testing.T) {
	t.Setenv(config.RootPathEnv, writeDataset(t))

	tbl, err := GetTimeseries("DE110010", "discharge")
	require.NoError(t, err)
	assert.Equal(t, []string{"date", "discharge"}, tbl.Columns())
}

func TestTopLevelGetAttributes(t *testing.T) {
	t.Setenv(config.RootPathEnv, writeDataset(t))

	tbl, err := GetAttributes(Hydrologic, WithGaugeID("DE110000"))
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
}

func TestTopLevelGeometries(t *testing.T) {
	t.Setenv(config.RootPathEnv, writeDataset(t))

	catchments, err := GetCatchments("")
	require.NoError(t, err)
	assert.Equal(t, 3, catchments.Len())

	locations, err := GetStationLocations("DE110000")
	require.NoError(t, err)
	assert.Equal(t, 1, locations.Len())
}

func TestTopLevelUnresolvedRoot(t *testing.T) {
	// No config.ini lives in this package directory, so clearing the
	// environment leaves the root unresolvable.
	t.Setenv(config.RootPathEnv, "")

	_, err := GetTimeseries("DE110010")
	assert.ErrorIs(t, err, ErrRootPathNotSet)

	_, err = GetAttributes(Soil)
	assert.ErrorIs(t, err, ErrRootPathNotSet)
}
