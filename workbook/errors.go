package workbook

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound reports that the workbook path does not exist.
	ErrSourceNotFound = errors.New("workbook not found")
	// ErrSheetUnreadable matches every *SheetError.
	ErrSheetUnreadable = errors.New("sheet unreadable")
	// ErrColumnNotFound reports a header that is absent from a sheet's first row.
	ErrColumnNotFound = errors.New("column not found")
)

// SheetError records a sheet that exists in the request but could not be
// read or parsed.
type SheetError struct {
	Sheet string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("read sheet %q: %v", e.Sheet, e.Err)
}

// Unwrap exposes both ErrSheetUnreadable and the underlying cause.
func (e *SheetError) Unwrap() []error {
	return []error{ErrSheetUnreadable, e.Err}
}
