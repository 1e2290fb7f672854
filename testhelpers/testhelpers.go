// Package testhelpers builds spreadsheet fixtures for tests.
package testhelpers

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet is a named grid of values. Rows are written top to bottom starting
// at A1; a nil value leaves the cell empty.
type Sheet struct {
	Name string
	Rows [][]any
}

// NewWorkbook writes sheets to an .xlsx file inside a temporary directory and
// returns its path. The directory is removed when the test finishes.
func NewWorkbook(t *testing.T, sheets ...Sheet) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "workbook.xlsx")
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				t.Fatalf("rename sheet %q: %v", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			t.Fatalf("create sheet %q: %v", sheet.Name, err)
		}

		for r, values := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("cell name for row %d: %v", r+1, err)
			}
			row := append([]any(nil), values...)
			if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
				t.Fatalf("write row %d of %q: %v", r+1, sheet.Name, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

// NewCSVDir writes each sheet as <name>.csv inside a temporary directory and
// returns the directory.
func NewCSVDir(t *testing.T, sheets ...Sheet) string {
	t.Helper()

	dir := t.TempDir()
	for _, sheet := range sheets {
		file, err := os.Create(filepath.Join(dir, sheet.Name+".csv"))
		if err != nil {
			t.Fatalf("create csv %q: %v", sheet.Name, err)
		}
		w := csv.NewWriter(file)
		for _, values := range sheet.Rows {
			record := make([]string, len(values))
			for i, v := range values {
				if v != nil {
					record[i] = fmt.Sprint(v)
				}
			}
			if err := w.Write(record); err != nil {
				t.Fatalf("write csv %q: %v", sheet.Name, err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			t.Fatalf("flush csv %q: %v", sheet.Name, err)
		}
		if err := file.Close(); err != nil {
			t.Fatalf("close csv %q: %v", sheet.Name, err)
		}
	}
	return dir
}

// CostingSheets returns a small copy of the costing workbook layout: a
// "Summary Sheet", a "Costing Sheet", and the "Drop Down Values" equipment
// list with blank and "nan" gaps.
func CostingSheets() []Sheet {
	return []Sheet{
		{
			Name: "Summary Sheet",
			Rows: [][]any{
				{"Project", "Fire Alarm Upgrade", nil},
				{"Material Markup", nil, 1.5},
				{"Labour Rate", 150, nil},
				{"Overheads", 0.15, nil},
				{"Total", 0, -20},
			},
		},
		{
			Name: "Costing Sheet",
			Rows: [][]any{
				{"Item", "Qty", "Cost"},
				{"Smoke Detector", 10, 120},
			},
		},
		{
			Name: "Drop Down Values",
			Rows: [][]any{
				{"Control Panels and Indicators"},
				{"Fire Indicator Panel 2 Loop"},
				{nil},
				{"Photoelectric Smoke Detector"},
				{"nan"},
				{"Sounder Base"},
				{"Generic Widget"},
			},
		},
	}
}

// ReadFile returns the contents of path, failing the test when it cannot be
// read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// AssertContains checks that body contains all specified fragments.
func AssertContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected output to contain %q", frag)
		}
	}
}
