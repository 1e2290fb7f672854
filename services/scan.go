package services

import (
	"fmt"
	"strings"

	"firecatalog/workbook"
)

// markupTerms flag labels that may sit next to a markup rate.
var markupTerms = []string{"markup", "material"}

// markupOffsets are the columns to the right of a label that are checked
// for a value.
var markupOffsets = []int{1, 2}

// NumericCell is a positive number found while scanning a sheet. Row and Col
// are zero-based and count the header row.
type NumericCell struct {
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	Value float64 `json:"value"`
}

func (c NumericCell) String() string {
	return fmt.Sprintf("[%d,%d]: %v", c.Row, c.Col, c.Value)
}

// MarkupCandidate is a number found next to a markup or material label.
type MarkupCandidate struct {
	Row    int     `json:"row"`
	Col    int     `json:"col"`
	Label  string  `json:"label"`
	Offset int     `json:"offset"`
	Value  float64 `json:"value"`
}

// ScanNumericCells returns every cell holding a number greater than zero,
// row by row.
func ScanNumericCells(rows []workbook.Row) []NumericCell {
	var found []NumericCell
	for i, row := range rows {
		for j, cell := range row {
			if cell.Kind == workbook.Number && cell.Number > 0 {
				found = append(found, NumericCell{Row: i, Col: j, Value: cell.Number})
			}
		}
	}
	return found
}

// ScanMarkupCandidates finds text cells mentioning a markup term and reports
// the numbers one and two columns to their right. The values are hints for
// whoever maintains the formula configuration; they are never applied.
func ScanMarkupCandidates(rows []workbook.Row) []MarkupCandidate {
	var found []MarkupCandidate
	for i, row := range rows {
		for j, cell := range row {
			if cell.Kind != workbook.Text || !mentionsMarkup(cell.Text) {
				continue
			}
			for _, offset := range markupOffsets {
				next := row.At(j + offset)
				if next.Kind != workbook.Number {
					continue
				}
				found = append(found, MarkupCandidate{
					Row:    i,
					Col:    j,
					Label:  strings.TrimSpace(cell.Text),
					Offset: offset,
					Value:  next.Number,
				})
			}
		}
	}
	return found
}

func mentionsMarkup(text string) bool {
	lower := strings.ToLower(text)
	for _, term := range markupTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
