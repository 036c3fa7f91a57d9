// Package csvtable represents one flat CSV file as a database table
// with a header row of column names. It backs both the user tables and
// the product catalog.
package csvtable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Row is a single record keyed by column name. Values are read back as
// text; callers convert to numeric types themselves.
type Row map[string]string

var (
	// ErrInvalidArgument indicates a table was opened with bad arguments.
	ErrInvalidArgument = errors.New("csvtable: invalid argument")
	// ErrNotImplemented signals a declared but not yet required operation.
	ErrNotImplemented = errors.New("csvtable: operation not implemented")
)

// Table is one CSV-backed table. All reads scan the whole file; there
// is no row-level locking and a single writer is assumed.
type Table struct {
	name     string
	columns  []string
	filename string
}

// Open ensures dir and the backing file exist and returns the table.
// A missing file is created with the header row; an existing file is
// left untouched, so Open is idempotent.
func Open(name string, columns []string, dir string) (*Table, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidArgument)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: columns must not be empty", ErrInvalidArgument)
	}
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("%w: dir must not be empty", ErrInvalidArgument)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	t := &Table{
		name:     name,
		columns:  columns,
		filename: filepath.Join(dir, name+".csv"),
	}

	if _, err := os.Stat(t.filename); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %w", t.filename, err)
		}
		if err := t.writeAll(nil); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Columns returns the declared column schema.
func (t *Table) Columns() []string { return t.columns }

// Select returns every row where each where key equals the row value
// exactly, after surrounding whitespace is stripped from both column
// names and values. A nil or empty where selects all rows. Rows come
// back in file order.
func (t *Table) Select(where map[string]string) ([]Row, error) {
	f, err := os.Open(t.filename)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", t.filename, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t.filename, err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var matched []Row
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			}
		}
		if rowMatches(row, where) {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

// Update is declared for future use and fails loudly until implemented.
func (t *Table) Update(values, where map[string]string) error {
	return fmt.Errorf("%w: update on table %s", ErrNotImplemented, t.name)
}

// Insert is declared for future use and fails loudly until implemented.
func (t *Table) Insert(values map[string]string) error {
	return fmt.Errorf("%w: insert on table %s", ErrNotImplemented, t.name)
}

// Delete is declared for future use and fails loudly until implemented.
func (t *Table) Delete(where map[string]string) error {
	return fmt.Errorf("%w: delete on table %s", ErrNotImplemented, t.name)
}

// WriteRows replaces the whole table with the given rows. Row values
// are laid out in declared column order; keys matching no column are
// dropped.
func (t *Table) WriteRows(rows []Row) error {
	return t.writeAll(rows)
}

func (t *Table) writeAll(rows []Row) error {
	f, err := os.Create(t.filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", t.filename, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	record := make([]string, len(t.columns))
	for _, row := range rows {
		for i, col := range t.columns {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", t.filename, err)
	}
	return nil
}

func rowMatches(row Row, where map[string]string) bool {
	for key, want := range where {
		if row[key] != want {
			return false
		}
	}
	return true
}
