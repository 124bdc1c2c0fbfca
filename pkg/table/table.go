// Package table provides a minimal read-only tabular view over CSV files.
//
// A Table keeps the header and all rows as strings; it performs no type
// conversion. Column selection and row filtering return new Tables and
// never mutate the receiver.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// UnknownColumnError is returned when a requested column is not present
// in the table header.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column: %s", e.Column)
}

func NewUnknownColumnError(column string) *UnknownColumnError {
	return &UnknownColumnError{Column: column}
}

// Read parses CSV data from r. The first record is taken as the header
// and every following record must have the same number of fields.
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("reading header: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		row := make([]string, len(record))
		copy(row, record)
		rows = append(rows, row)
	}

	return &Table{columns: header, index: index, rows: rows}, nil
}

// ReadFile reads a CSV file from disk.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

// Columns returns the header names in file order.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether name is part of the header.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Rows returns all data rows in file order.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		rows[i] = make([]string, len(row))
		copy(rows[i], row)
	}
	return rows
}

// Column returns all values of one column in row order.
func (t *Table) Column(name string) ([]string, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, NewUnknownColumnError(name)
	}
	values := make([]string, len(t.rows))
	for j, row := range t.rows {
		values[j] = row[i]
	}
	return values, nil
}

// Cell returns the value at row i, column name.
func (t *Table) Cell(i int, name string) (string, error) {
	if i < 0 || i >= len(t.rows) {
		return "", fmt.Errorf("row index %d out of range [0, %d)", i, len(t.rows))
	}
	j, ok := t.index[name]
	if !ok {
		return "", NewUnknownColumnError(name)
	}
	return t.rows[i][j], nil
}

// Select returns a new table restricted to the named columns. The result
// keeps the receiver's column order regardless of the order of names;
// duplicates in names are ignored. An unknown name fails with
// UnknownColumnError.
func (t *Table) Select(names ...string) (*Table, error) {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		if !t.HasColumn(name) {
			return nil, NewUnknownColumnError(name)
		}
		wanted[name] = true
	}

	var keep []int
	var columns []string
	for i, name := range t.columns {
		if wanted[name] {
			keep = append(keep, i)
			columns = append(columns, name)
		}
	}

	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		selected := make([]string, len(keep))
		for j, k := range keep {
			selected[j] = row[k]
		}
		rows[i] = selected
	}

	index := make(map[string]int, len(columns))
	for i, name := range columns {
		index[name] = i
	}

	return &Table{columns: columns, index: index, rows: rows}, nil
}

// Filter returns a new table containing only the rows whose value in the
// named column equals value.
func (t *Table) Filter(name, value string) (*Table, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, NewUnknownColumnError(name)
	}

	var rows [][]string
	for _, row := range t.rows {
		if row[i] == value {
			kept := make([]string, len(row))
			copy(kept, row)
			rows = append(rows, kept)
		}
	}

	index := make(map[string]int, len(t.columns))
	for j, name := range t.columns {
		index[name] = j
	}

	return &Table{columns: t.Columns(), index: index, rows: rows}, nil
}

// WriteCSV writes the table back out as CSV, header first.
func (t *Table) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range t.rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
