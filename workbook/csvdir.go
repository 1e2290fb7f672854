package workbook

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const csvExt = ".csv"

// utf8BOM is written by Excel's "CSV UTF-8" export.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVDir reads sheets exported as <sheet>.csv files in a single directory.
type CSVDir struct {
	dir    string
	sheets []string
}

// OpenCSVDir indexes the CSV files in dir.
func OpenCSVDir(dir string) (*CSVDir, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read csv directory: %w", err)
	}
	var sheets []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.EqualFold(filepath.Ext(name), csvExt) {
			sheets = append(sheets, strings.TrimSuffix(name, filepath.Ext(name)))
		}
	}
	sort.Strings(sheets)
	return &CSVDir{dir: dir, sheets: sheets}, nil
}

// SheetNames lists the sheets found in the directory, sorted by name.
func (c *CSVDir) SheetNames() []string {
	return append([]string(nil), c.sheets...)
}

// ReadSheet parses <dir>/<name>.csv.
func (c *CSVDir) ReadSheet(name string) ([]Row, error) {
	data, err := os.ReadFile(filepath.Join(c.dir, name+csvExt))
	if err != nil {
		return nil, &SheetError{Sheet: name, Err: err}
	}

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &SheetError{Sheet: name, Err: fmt.Errorf("failed to parse CSV: %w", err)}
	}
	return ParseRows(records), nil
}

// Close is a no-op; files are opened per read.
func (c *CSVDir) Close() error {
	return nil
}
