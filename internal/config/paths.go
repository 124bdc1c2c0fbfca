package config

import (
	"fmt"
	"path/filepath"
)

// File names inside a CAMELS-DE dataset root. The layout is fixed by the
// published dataset; nothing here is configurable.
const (
	timeseriesDir = "timeseries"

	catchmentsFile       = "CAMELS_DE_catchment_boundaries.geojson"
	stationLocationsFile = "CAMELS_DE_gauging_stations.geojson"
)

// AttributesPath returns the path of the attribute table for one category,
// e.g. CAMELS_DE_topographic_attributes.csv.
func AttributesPath(root, category string) string {
	return filepath.Join(root, fmt.Sprintf("CAMELS_DE_%s_attributes.csv", category))
}

// TimeseriesPath returns the path of the hydro-meteorological timeseries
// file for one station.
func TimeseriesPath(root, gaugeID string) string {
	return filepath.Join(root, timeseriesDir, fmt.Sprintf("CAMELS_DE_hydromet_timeseries_%s.csv", gaugeID))
}

// CatchmentsPath returns the path of the catchment boundary collection.
func CatchmentsPath(root string) string {
	return filepath.Join(root, catchmentsFile)
}

// StationLocationsPath returns the path of the station location collection.
func StationLocationsPath(root string) string {
	return filepath.Join(root, stationLocationsFile)
}
