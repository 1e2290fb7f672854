package workbook

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/xuri/excelize/v2"
)

// Excel reads sheets from an .xlsx workbook.
type Excel struct {
	file *excelize.File
}

// OpenExcel opens the workbook at path.
func OpenExcel(path string) (*Excel, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	return &Excel{file: f}, nil
}

// OpenExcelReader reads a workbook from r, typically an in-memory file.
func OpenExcelReader(r io.Reader) (*Excel, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	return &Excel{file: f}, nil
}

// SheetNames lists the sheets in workbook order.
func (e *Excel) SheetNames() []string {
	return e.file.GetSheetList()
}

// ReadSheet returns every row of the named sheet. Cell values are read raw,
// without number formats, so "$1,200.00" arrives as the number 1200.
func (e *Excel) ReadSheet(name string) ([]Row, error) {
	raw, err := e.file.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &SheetError{Sheet: name, Err: err}
	}
	return ParseRows(raw), nil
}

// Close releases the workbook's temporary files.
func (e *Excel) Close() error {
	return e.file.Close()
}
