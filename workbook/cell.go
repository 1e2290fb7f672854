package workbook

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// CellKind distinguishes empty, text and numeric cells.
type CellKind int

const (
	Empty CellKind = iota
	Text
	Number
)

func (k CellKind) String() string {
	switch k {
	case Text:
		return "text"
	case Number:
		return "number"
	default:
		return "empty"
	}
}

// Cell is a single worksheet value. Text keeps the trimmed source text for
// numeric cells so they can still be rendered as written.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// String returns the cell as display text; empty cells render as "".
func (c Cell) String() string {
	if c.Kind == Empty {
		return ""
	}
	return c.Text
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == Empty
}

// Row is one worksheet row, left to right.
type Row []Cell

// At returns the cell in column i, or an empty cell past the end of the row.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return Cell{}
	}
	return r[i]
}

// Strings renders every cell of the row as display text.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.String()
	}
	return out
}

// ParseCell classifies a raw cell value. Blank text is Empty; text that
// parses as a finite number is Number; everything else is Text. "NaN" and
// "Inf" spellings stay Text so placeholder handling can see them.
func ParseCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Kind: Empty}
	}
	if n, err := cast.ToFloat64E(trimmed); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return Cell{Kind: Number, Text: trimmed, Number: n}
	}
	return Cell{Kind: Text, Text: raw}
}

// ParseRows converts a raw string grid into typed rows.
func ParseRows(raw [][]string) []Row {
	rows := make([]Row, len(raw))
	for i, values := range raw {
		row := make(Row, len(values))
		for j, v := range values {
			row[j] = ParseCell(v)
		}
		rows[i] = row
	}
	return rows
}
