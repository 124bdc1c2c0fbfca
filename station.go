package camelsde

import (
	"fmt"

	"github.com/camels-de/camelsde-go/pkg/table"
)

// Station is a convenience handle on one gauging station of a dataset.
// Instances come from Dataset.Station and always carry a validated id.
type Station struct {
	GaugeID string

	dataset *Dataset
}

func (s *Station) String() string {
	return fmt.Sprintf("%s Station object", s.GaugeID)
}

// Timeseries returns the station's timeseries, optionally restricted to
// the given variables.
func (s *Station) Timeseries(variables ...string) (*table.Table, error) {
	return s.dataset.Timeseries(s.GaugeID, variables...)
}

// Attributes returns the station's row of one attribute table, optionally
// restricted to the given columns.
func (s *Station) Attributes(kind AttributeType, columns ...string) (*table.Table, error) {
	opts := []AttributeOption{WithGaugeID(s.GaugeID)}
	if len(columns) > 0 {
		opts = append(opts, WithColumns(columns...))
	}
	return s.dataset.Attributes(kind, opts...)
}

// Catchment returns the station's catchment boundary, or an error if the
// dataset has no catchment for it.
func (s *Station) Catchment() (*Feature, error) {
	fc, err := s.dataset.Catchments(s.GaugeID)
	if err != nil {
		return nil, err
	}
	if fc.Len() == 0 {
		return nil, fmt.Errorf("no catchment boundary for %s", s.GaugeID)
	}
	return &fc.Features[0], nil
}

// Location returns the station's gauge location, or an error if the
// dataset has no location for it.
func (s *Station) Location() (*Feature, error) {
	fc, err := s.dataset.StationLocations(s.GaugeID)
	if err != nil {
		return nil, err
	}
	if fc.Len() == 0 {
		return nil, fmt.Errorf("no station location for %s", s.GaugeID)
	}
	return &fc.Features[0], nil
}
