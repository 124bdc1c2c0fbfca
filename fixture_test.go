package camelsde

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeDataset lays out a small but complete dataset root in a temp
// directory: all eight attribute tables, one timeseries file and both
// geometry collections for three stations.
func writeDataset(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	topographic := "gauge_id,area,elev_mean,slope_mean\n" +
		"DE110000,1235.0,452.1,8.2\n" +
		"DE110010,208.2,610.5,12.7\n" +
		"DE110020,47.9,733.0,15.1\n"
	writeFile(t, filepath.Join(root, "CAMELS_DE_topographic_attributes.csv"), topographic)

	for _, category := range []string{"soil", "landcover", "hydrogeology", "humaninfluence", "climatic", "hydrologic", "simulation_benchmark"} {
		content := fmt.Sprintf("gauge_id,%s_a,%s_b\nDE110000,1.0,2.0\nDE110010,3.0,4.0\nDE110020,5.0,6.0\n", category, category)
		writeFile(t, filepath.Join(root, fmt.Sprintf("CAMELS_DE_%s_attributes.csv", category)), content)
	}

	timeseries := "date,precipitation,temperature,discharge\n" +
		"2000-01-01,4.2,1.3,12.5\n" +
		"2000-01-02,0.0,2.1,11.9\n" +
		"2000-01-03,7.8,0.4,14.2\n"
	require.NoError(t, os.MkdirAll(filepath.Join(root, "timeseries"), 0755))
	writeFile(t, filepath.Join(root, "timeseries", "CAMELS_DE_hydromet_timeseries_DE110010.csv"), timeseries)

	catchments := `{
		"type": "FeatureCollection",
		"features": [
			{
				"type": "Feature",
				"properties": {"gauge_id": "DE110000", "area": 1235.0},
				"geometry": {"type": "Polygon", "coordinates": [[[8.0, 48.0], [8.5, 48.0], [8.5, 48.5], [8.0, 48.5], [8.0, 48.0]]]}
			},
			{
				"type": "Feature",
				"properties": {"gauge_id": "DE110010", "area": 208.2},
				"geometry": {"type": "Polygon", "coordinates": [[[9.0, 48.0], [9.3, 48.0], [9.3, 48.2], [9.0, 48.2], [9.0, 48.0]]]}
			},
			{
				"type": "Feature",
				"properties": {"gauge_id": "DE110020", "area": 47.9},
				"geometry": {"type": "Polygon", "coordinates": [[[9.5, 48.5], [9.6, 48.5], [9.6, 48.6], [9.5, 48.6], [9.5, 48.5]]]}
			}
		]
	}`
	writeFile(t, filepath.Join(root, "CAMELS_DE_catchment_boundaries.geojson"), catchments)

	stations := `{
		"type": "FeatureCollection",
		"features": [
			{
				"type": "Feature",
				"properties": {"gauge_id": "DE110000"},
				"geometry": {"type": "Point", "coordinates": [8.25, 48.25]}
			},
			{
				"type": "Feature",
				"properties": {"gauge_id": "DE110010"},
				"geometry": {"type": "Point", "coordinates": [9.15, 48.1]}
			},
			{
				"type": "Feature",
				"properties": {"gauge_id": "DE110020"},
				"geometry": {"type": "Point", "coordinates": [9.55, 48.55]}
			}
		]
	}`
	writeFile(t, filepath.Join(root, "CAMELS_DE_gauging_stations.geojson"), stations)

	return root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
