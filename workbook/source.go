// Package workbook reads spreadsheet sheets as rows of typed cells.
//
// Two adapters satisfy Source: Excel reads an .xlsx workbook and CSVDir reads
// a directory holding one <sheet>.csv file per sheet. Callers should obtain a
// Source through Open so that a missing workbook is reported as
// ErrSourceNotFound regardless of the adapter.
package workbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Source yields the rows of named sheets.
type Source interface {
	SheetNames() []string
	ReadSheet(name string) ([]Row, error)
	Close() error
}

// Open returns the adapter suited to path: CSVDir for a directory, Excel for
// anything else.
func Open(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("stat workbook: %w", err)
	}
	if info.IsDir() {
		return OpenCSVDir(path)
	}
	return OpenExcel(path)
}
