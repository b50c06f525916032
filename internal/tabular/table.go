// =============================================================================
// Persona Data Generator - Tabular Source Reader
// =============================================================================
//
// This module reads the per-store tabular source files that back every
// category of transactional data. Stores export either CSV or XLSX; the
// reader resolves the format by extension and returns the same row shape
// for both, so the normalizers never care where a table came from.
//
// ABSENT FILES:
//   A missing source file is an expected, common condition (a store simply
//   has no data for that category), so absence is modeled as a result value
//   (Table.Present == false) rather than an error. Only genuinely malformed
//   files produce errors.
//
// ROW SHAPE:
//   Rows are maps of header -> trimmed cell value. Using maps allows the
//   normalizers to resolve vendor-specific column names through ordered
//   fallback chains instead of positional access.
//
// =============================================================================

package tabular

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// =============================================================================
// TABLE AND ROW TYPES
// =============================================================================

// Row is a single data row keyed by column header.
type Row map[string]string

// Table represents one parsed tabular source file.
type Table struct {
	// Headers contains the column headers in file order.
	Headers []string

	// Rows contains the data rows as maps of header -> value.
	Rows []Row

	// Present indicates whether the source file existed. An absent file
	// yields Present == false with zero rows, never an error.
	Present bool

	// SourceFile is the path the table was read from (empty when absent).
	SourceFile string
}

// Empty is the table returned for an absent source file.
func Empty() Table {
	return Table{Present: false}
}

// =============================================================================
// READING
// =============================================================================

// Read reads a tabular file by its exact path. The format is chosen by
// extension: ".xlsx" goes through excelize, everything else through the
// CSV reader. A missing file returns an empty, non-present table.
func Read(path string) (Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Empty(), nil
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}
	return readCSV(path)
}

// ReadAny probes for a source file by stem, trying ".csv" first and then
// ".xlsx". Store exports occasionally arrive as workbooks instead of CSV;
// both carry the same columns.
//
// PARAMETERS:
//   - dir: The store's data directory.
//   - stem: The file name without extension (e.g. "orders").
//
// RETURNS:
//   - The parsed table, or an empty non-present table if neither exists.
func ReadAny(dir, stem string) (Table, error) {
	for _, ext := range []string{".csv", ".xlsx"} {
		path := filepath.Join(dir, stem+ext)
		if _, err := os.Stat(path); err == nil {
			return Read(path)
		}
	}
	return Empty(), nil
}

// readCSV parses a comma-separated file with a single header row.
func readCSV(path string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return Empty(), fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))

	// Tolerate ragged rows and loosely-quoted cells; the row maps fill
	// missing columns with empty strings.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return Empty(), fmt.Errorf("failed to read %s: %w", path, err)
	}

	return fromRecords(records, path), nil
}

// readXLSX parses the first sheet of a workbook, treating row 1 as headers.
func readXLSX(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Empty(), fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{Present: true, SourceFile: path}, nil
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return Empty(), fmt.Errorf("failed to read sheet %s of %s: %w", sheets[0], path, err)
	}

	return fromRecords(records, path), nil
}

// fromRecords converts raw row slices into a Table, skipping blank rows.
func fromRecords(records [][]string, path string) Table {
	table := Table{Present: true, SourceFile: path}
	if len(records) == 0 {
		return table
	}

	table.Headers = make([]string, len(records[0]))
	for i, header := range records[0] {
		table.Headers[i] = strings.TrimSpace(header)
	}

	for _, record := range records[1:] {
		if isRowEmpty(record) {
			continue
		}

		row := make(Row, len(table.Headers))
		for i, header := range table.Headers {
			if i < len(record) {
				row[header] = strings.TrimSpace(record[i])
			} else {
				row[header] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// =============================================================================
// FILTERING AND INDEXING
// =============================================================================

// FilterBy returns the rows whose value in field equals want.
// No ordering guarantee beyond source order is made; the normalizers
// re-sort as needed.
func (t Table) FilterBy(field, want string) []Row {
	var matched []Row
	for _, row := range t.Rows {
		if row[field] == want {
			matched = append(matched, row)
		}
	}
	return matched
}

// IndexBy builds a lookup from the value of field to the first row carrying
// it. Used for join tables (showtimes, plans, services, pets) where the key
// is unique.
func (t Table) IndexBy(field string) map[string]Row {
	index := make(map[string]Row, len(t.Rows))
	for _, row := range t.Rows {
		key := row[field]
		if key == "" {
			continue
		}
		if _, exists := index[key]; !exists {
			index[key] = row
		}
	}
	return index
}

// GroupBy builds a lookup from the value of field to every row carrying it,
// preserving source order within each group. Used to index order items by
// order id once per store before iterating orders.
func (t Table) GroupBy(field string) map[string][]Row {
	groups := make(map[string][]Row)
	for _, row := range t.Rows {
		key := row[field]
		groups[key] = append(groups[key], row)
	}
	return groups
}

// =============================================================================
// ROW FIELD HELPERS
// =============================================================================

// First returns the first non-empty value among the named fields.
// This is the ordered, first-match-wins fallback chain used to absorb
// vendor-specific column naming.
func (r Row) First(fields ...string) string {
	for _, field := range fields {
		if value := r[field]; value != "" {
			return value
		}
	}
	return ""
}

// FirstOr is First with a default when every candidate is empty.
func (r Row) FirstOr(fallback string, fields ...string) string {
	if value := r.First(fields...); value != "" {
		return value
	}
	return fallback
}

// Float parses the first non-empty candidate as a float, coercing
// unparsable values to 0.
func (r Row) Float(fields ...string) float64 {
	value := r.First(fields...)
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// Int parses the first non-empty candidate as an integer, returning
// fallback when missing or unparsable.
func (r Row) Int(fallback int, fields ...string) int {
	value := r.First(fields...)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
