package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// PriceListSheet is the worksheet name of the generated price list.
const PriceListSheet = "Price List"

const audNumFmt = `"$"#,##0.00`

// GeneratePriceListExcel renders the price list as an xlsx workbook and
// returns the file contents. Prices are written as numbers with a currency
// format so the sheet stays usable for further costing.
func GeneratePriceListExcel(data PriceListData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := PriceListSheet
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 44, 26, 8, 16, 18}
	for i, col := range columns {
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#B22222"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	textStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create text style: %w", err)
	}

	numFmt := audNumFmt
	moneyStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Size: 10},
		Border:       thinBorders(),
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	// ── Header Rows (1-3) ───────────────────────────────────────────────

	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", sanitizeExcelCell(data.Title))
	f.SetCellStyle(sheet, "A1", lastCol+"1", titleStyle)

	if data.ReferenceNumber != "" {
		if err := f.MergeCell(sheet, "A2", lastCol+"2"); err != nil {
			return nil, fmt.Errorf("merge ref: %w", err)
		}
		f.SetCellValue(sheet, "A2", "Ref: "+sanitizeExcelCell(data.ReferenceNumber))
		f.SetCellStyle(sheet, "A2", lastCol+"2", subtitleStyle)
	}

	if err := f.MergeCell(sheet, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheet, "A3", "Date: "+data.CreatedDate)
	f.SetCellStyle(sheet, "A3", lastCol+"3", subtitleStyle)

	// ── Row 5: Column Headers ───────────────────────────────────────────

	headers := []string{"#", "Equipment", "Category", "Unit", "Base Price", "Price incl. GST"}
	for i, h := range headers {
		f.SetCellValue(sheet, columns[i]+"5", h)
	}
	f.SetCellStyle(sheet, "A5", lastCol+"5", headerStyle)

	// ── Data Rows (starting row 6) ──────────────────────────────────────

	row := 6
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheet, "A"+rowStr, r.ID)
		f.SetCellValue(sheet, "B"+rowStr, sanitizeExcelCell(r.Name))
		f.SetCellValue(sheet, "C"+rowStr, sanitizeExcelCell(r.Category))
		f.SetCellValue(sheet, "D"+rowStr, sanitizeExcelCell(r.Unit))
		f.SetCellValue(sheet, "E"+rowStr, r.BasePrice.InexactFloat64())
		f.SetCellValue(sheet, "F"+rowStr, r.GrossPrice.InexactFloat64())

		f.SetCellStyle(sheet, "A"+rowStr, "D"+rowStr, textStyle)
		f.SetCellStyle(sheet, "E"+rowStr, lastCol+rowStr, moneyStyle)
		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++
	summaryRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheet, "E"+summaryRow, "Items:")
	f.SetCellStyle(sheet, "E"+summaryRow, "E"+summaryRow, summaryLabelStyle)
	f.SetCellValue(sheet, "F"+summaryRow, len(data.Rows))
	row++

	summaryRow = fmt.Sprintf("%d", row)
	f.SetCellValue(sheet, "E"+summaryRow, "GST rate:")
	f.SetCellStyle(sheet, "E"+summaryRow, "E"+summaryRow, summaryLabelStyle)
	f.SetCellValue(sheet, "F"+summaryRow, FormatPercent(data.TaxRate))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
