package camelsde

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/camels-de/camelsde-go/internal/config"
	"github.com/camels-de/camelsde-go/pkg/table"
)

const (
	// GaugeIDColumn is the identifier column shared by all attribute and
	// geometry files.
	GaugeIDColumn = "gauge_id"

	// DateColumn is the index column of every timeseries file.
	DateColumn = "date"
)

// Dataset is a handle on one CAMELS-DE dataset root. It holds nothing but
// the root path; every accessor re-reads the underlying files.
type Dataset struct {
	root string
}

// NewDataset resolves the dataset root from the environment or config.ini
// and returns a handle bound to it.
func NewDataset() (*Dataset, error) {
	root, err := config.ResolveRootPath()
	if err != nil {
		return nil, fmt.Errorf("resolving dataset root: %w", err)
	}
	return NewDatasetAt(root), nil
}

// NewDatasetAt returns a handle bound to an explicit root directory,
// bypassing environment and config file.
func NewDatasetAt(root string) *Dataset {
	return &Dataset{root: root}
}

// Root returns the dataset root directory.
func (d *Dataset) Root() string {
	return d.root
}

// GaugeIDIsValid reports whether gaugeID appears in the gauge_id column of
// the topographic attribute table, the canonical station register.
func (d *Dataset) GaugeIDIsValid(gaugeID string) (bool, error) {
	ids, err := d.GaugeIDs()
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == gaugeID {
			return true, nil
		}
	}
	return false, nil
}

// GaugeIDs returns every gauge id in the dataset, in file order.
func (d *Dataset) GaugeIDs() ([]string, error) {
	path := config.AttributesPath(d.root, Topographic.String())
	tbl, err := table.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading station register: %w", err)
	}
	ids, err := tbl.Column(GaugeIDColumn)
	if err != nil {
		return nil, fmt.Errorf("reading station register: %w", err)
	}
	return ids, nil
}

// checkGaugeID validates gaugeID against the station register.
func (d *Dataset) checkGaugeID(gaugeID string) error {
	valid, err := d.GaugeIDIsValid(gaugeID)
	if err != nil {
		return err
	}
	if !valid {
		return NewInvalidGaugeIDError(gaugeID)
	}
	return nil
}

// Timeseries returns the hydro-meteorological timeseries of one station as
// a date-indexed table. With no variables, all columns are returned. With
// variables, the result holds the date column plus exactly those variables,
// in file column order; an unknown variable is a validation error.
//
// The gauge id is validated against the station register before the
// per-station file is opened, so an unknown id fails the same way here as
// in the attribute and geometry accessors.
func (d *Dataset) Timeseries(gaugeID string, variables ...string) (*table.Table, error) {
	if err := d.checkGaugeID(gaugeID); err != nil {
		return nil, err
	}

	path := config.TimeseriesPath(d.root, gaugeID)
	log.Debug().Str("gauge_id", gaugeID).Str("path", path).Msg("reading timeseries")

	tbl, err := table.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading timeseries for %s: %w", gaugeID, err)
	}

	if len(variables) == 0 {
		return tbl, nil
	}

	for _, variable := range variables {
		if !tbl.HasColumn(variable) {
			return nil, NewValidationError("%s is not a valid variable", variable)
		}
	}

	selected, err := tbl.Select(append([]string{DateColumn}, variables...)...)
	if err != nil {
		return nil, fmt.Errorf("selecting variables: %w", err)
	}
	return selected, nil
}

// attributeQuery collects the optional filters of an attribute request.
type attributeQuery struct {
	gaugeID string
	columns []string
}

// AttributeOption narrows an attribute request.
type AttributeOption func(*attributeQuery)

// WithGaugeID restricts the result to the row of one station. The id is
// validated first; an unknown id fails the request.
func WithGaugeID(gaugeID string) AttributeOption {
	return func(q *attributeQuery) {
		q.gaugeID = gaugeID
	}
}

// WithColumns restricts the result to the named columns, kept in file
// order. An unknown column fails the request.
func WithColumns(columns ...string) AttributeOption {
	return func(q *attributeQuery) {
		q.columns = append(q.columns, columns...)
	}
}

// Attributes returns one category's attribute table, optionally filtered
// to a single station row and/or a column subset.
func (d *Dataset) Attributes(kind AttributeType, opts ...AttributeOption) (*table.Table, error) {
	if !kind.valid() {
		return nil, NewValidationError("%d is not a valid attribute type, must be one of [%s]", int(kind), attributeTypeList())
	}

	var q attributeQuery
	for _, opt := range opts {
		opt(&q)
	}

	path := config.AttributesPath(d.root, kind.String())
	log.Debug().Stringer("type", kind).Str("path", path).Msg("reading attributes")

	tbl, err := table.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s attributes: %w", kind, err)
	}

	if q.gaugeID != "" {
		if err := d.checkGaugeID(q.gaugeID); err != nil {
			return nil, err
		}
		tbl, err = tbl.Filter(GaugeIDColumn, q.gaugeID)
		if err != nil {
			return nil, fmt.Errorf("filtering %s attributes: %w", kind, err)
		}
	}

	if len(q.columns) > 0 {
		for _, column := range q.columns {
			if !tbl.HasColumn(column) {
				return nil, NewValidationError("%s is not a valid column of the %s attributes", column, kind)
			}
		}
		tbl, err = tbl.Select(q.columns...)
		if err != nil {
			return nil, fmt.Errorf("selecting %s attribute columns: %w", kind, err)
		}
	}

	return tbl, nil
}

// Station returns a convenience handle on one station. The gauge id is
// validated against the station register.
func (d *Dataset) Station(gaugeID string) (*Station, error) {
	if err := d.checkGaugeID(gaugeID); err != nil {
		return nil, err
	}
	return &Station{GaugeID: gaugeID, dataset: d}, nil
}
