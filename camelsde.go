// Package camelsde reads the CAMELS-DE hydro-climatic dataset from disk.
//
// The dataset is a fixed layout of flat files under one root directory:
// one CSV attribute table per category, one date-indexed timeseries CSV
// per gauging station, and GeoJSON collections for catchment boundaries
// and station locations. This package resolves the root, builds the file
// paths and returns typed, filtered views; it never transforms or writes
// data.
//
// The top-level functions resolve the dataset root on every call, from
// the CAMELS_ROOT_PATH environment variable or a config.ini file in the
// working directory. Code that makes many calls should construct a
// Dataset once and use its methods instead.
package camelsde

import (
	"github.com/camels-de/camelsde-go/internal/config"
	"github.com/camels-de/camelsde-go/pkg/table"
)

// ResolveRootPath returns the root directory of the CAMELS-DE dataset,
// from the CAMELS_ROOT_PATH environment variable or the [CAMELS_DE]
// section of a config.ini in the working directory. ErrRootPathNotSet is
// returned when neither source yields a path.
func ResolveRootPath() (string, error) {
	return config.ResolveRootPath()
}

// GaugeIDIsValid reports whether gaugeID is a valid CAMELS-DE gauge id,
// i.e. whether it appears in the topographic attribute table.
func GaugeIDIsValid(gaugeID string) (bool, error) {
	d, err := NewDataset()
	if err != nil {
		return false, err
	}
	return d.GaugeIDIsValid(gaugeID)
}

// GetTimeseries returns the timeseries of one station. See
// Dataset.Timeseries.
func GetTimeseries(gaugeID string, variables ...string) (*table.Table, error) {
	d, err := NewDataset()
	if err != nil {
		return nil, err
	}
	return d.Timeseries(gaugeID, variables...)
}

// GetAttributes returns one category's attribute table. See
// Dataset.Attributes.
func GetAttributes(kind AttributeType, opts ...AttributeOption) (*table.Table, error) {
	d, err := NewDataset()
	if err != nil {
		return nil, err
	}
	return d.Attributes(kind, opts...)
}

// GetCatchments returns the catchment boundary collection. See
// Dataset.Catchments.
func GetCatchments(gaugeID string) (*FeatureCollection, error) {
	d, err := NewDataset()
	if err != nil {
		return nil, err
	}
	return d.Catchments(gaugeID)
}

// GetStationLocations returns the station location collection. See
// Dataset.StationLocations.
func GetStationLocations(gaugeID string) (*FeatureCollection, error) {
	d, err := NewDataset()
	if err != nil {
		return nil, err
	}
	return d.StationLocations(gaugeID)
}
