package workbook

import (
	"fmt"
	"strings"
)

// ColumnIndex finds header in the first row, ignoring case and surrounding
// whitespace. It returns -1 when the header is absent.
func ColumnIndex(rows []Row, header string) int {
	if len(rows) == 0 {
		return -1
	}
	want := strings.ToLower(strings.TrimSpace(header))
	for i, cell := range rows[0] {
		if strings.ToLower(strings.TrimSpace(cell.String())) == want {
			return i
		}
	}
	return -1
}

// Column returns the cells beneath header, one per data row. Rows too short
// to reach the column contribute an empty cell so positions match the sheet.
func Column(rows []Row, header string) ([]Cell, error) {
	idx := ColumnIndex(rows, header)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, header)
	}
	cells := make([]Cell, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells = append(cells, row.At(idx))
	}
	return cells, nil
}
