package table

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/edudata/scorecard/pkg"
	"github.com/pkg/errors"
)

// Maps a column name to its raw cell value.
// A cell is nil when the source had no value for it.
type Row = pkg.Map[string, any]

// Table is a read-only, row-oriented dataset.
// All rows share the column set of the source header.
type Table struct {
	Name    string
	Columns []string

	rows []Row
}

func New(name string, columns []string, rows []Row) *Table {
	return &Table{Name: name, Columns: columns, rows: rows}
}

// FromCSV reads a whole dataset into memory.
// Empty cells become nil; everything else stays raw text
// for the query layer to coerce.
func FromCSV(name string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "table %s: read header", name)
	}

	rows := []Row{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "table %s: read row %d", name, len(rows)+1)
		}

		row := Row{}
		for i, column := range header {
			if i >= len(record) || record[i] == "" {
				row.Set(column, nil)
				continue
			}
			row.Set(column, record[i])
		}
		rows = append(rows, row)
	}

	return New(name, header, rows), nil
}

func (t *Table) Rows() []Row { return t.rows }

func (t *Table) Len() int { return len(t.rows) }

func (t *Table) HasColumn(name string) bool {
	for _, column := range t.Columns {
		if column == name {
			return true
		}
	}
	return false
}

// RequireColumns reports the dataset as structurally invalid
// when a named column is missing from the header.
func (t *Table) RequireColumns(names ...string) error {
	for _, name := range names {
		if !t.HasColumn(name) {
			return errors.Errorf("table %s: missing required column %s", t.Name, name)
		}
	}
	return nil
}

// CellInt coerces a raw cell to an integer key.
// Cells come out of the csv loader as text, and out of
// test fixtures as numbers; both shapes are accepted.
func CellInt(cell any) (int, bool) {
	switch cell := cell.(type) {
	case int:
		return cell, true
	case float64:
		return int(cell), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(cell))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
