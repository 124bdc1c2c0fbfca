package camelsde

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/camels-de/camelsde-go/internal/config"
)

// Feature is one geographic feature of the dataset: a catchment boundary
// polygon or a station location point, keyed by gauge id.
type Feature struct {
	GaugeID    string
	Geometry   geom.T
	Properties map[string]interface{}
}

// FeatureCollection is a read-only view over one of the dataset's
// geometry files.
type FeatureCollection struct {
	Features []Feature
}

// Len returns the number of features.
func (fc *FeatureCollection) Len() int {
	return len(fc.Features)
}

// GaugeIDs returns the gauge ids of all features, in file order.
func (fc *FeatureCollection) GaugeIDs() []string {
	ids := make([]string, len(fc.Features))
	for i, f := range fc.Features {
		ids[i] = f.GaugeID
	}
	return ids
}

// Find returns the feature of one station, or nil if the collection has
// no feature for that id.
func (fc *FeatureCollection) Find(gaugeID string) *Feature {
	for i := range fc.Features {
		if fc.Features[i].GaugeID == gaugeID {
			return &fc.Features[i]
		}
	}
	return nil
}

// readFeatureCollection parses a GeoJSON feature collection from disk.
func readFeatureCollection(path string) (*FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	var raw geojson.FeatureCollection
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	fc := &FeatureCollection{Features: make([]Feature, 0, len(raw.Features))}
	for _, f := range raw.Features {
		feature := Feature{
			Geometry:   f.Geometry,
			Properties: f.Properties,
		}
		if id, ok := f.Properties[GaugeIDColumn].(string); ok {
			feature.GaugeID = id
		}
		fc.Features = append(fc.Features, feature)
	}

	log.Debug().Str("path", path).Int("features", fc.Len()).Msg("read geometry collection")
	return fc, nil
}

// geometryAt reads one geometry file, optionally filtered to one station.
// An empty gaugeID returns the whole collection.
func (d *Dataset) geometryAt(path, gaugeID string) (*FeatureCollection, error) {
	fc, err := readFeatureCollection(path)
	if err != nil {
		return nil, err
	}

	if gaugeID == "" {
		return fc, nil
	}

	if err := d.checkGaugeID(gaugeID); err != nil {
		return nil, err
	}

	filtered := &FeatureCollection{}
	if f := fc.Find(gaugeID); f != nil {
		filtered.Features = append(filtered.Features, *f)
	}
	return filtered, nil
}

// Catchments returns the catchment boundary collection. A non-empty
// gaugeID restricts the result to that station's catchment; the id is
// validated first.
func (d *Dataset) Catchments(gaugeID string) (*FeatureCollection, error) {
	return d.geometryAt(config.CatchmentsPath(d.root), gaugeID)
}

// StationLocations returns the gauging station location collection. A
// non-empty gaugeID restricts the result to that station; the id is
// validated first.
func (d *Dataset) StationLocations(gaugeID string) (*FeatureCollection, error) {
	return d.geometryAt(config.StationLocationsPath(d.root), gaugeID)
}
