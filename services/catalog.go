package services

import (
	"errors"

	"github.com/shopspring/decimal"

	"firecatalog/workbook"
)

// Default workbook layout.
const (
	DefaultEquipmentSheet  = "Drop Down Values"
	DefaultEquipmentColumn = "Control Panels and Indicators"
	DefaultSummarySheet    = "Summary Sheet"
)

// SheetReader yields the rows of a named sheet.
type SheetReader interface {
	ReadSheet(name string) ([]workbook.Row, error)
}

// CatalogOptions configures BuildCatalog.
type CatalogOptions struct {
	EquipmentSheet  string
	EquipmentColumn string
	MissingValues   []string
	Rules           KeywordPriceTable
	DefaultPrice    decimal.Decimal
	Categories      []Category
	Formulas        FormulaSet
}

// DefaultCatalogOptions returns the layout and pricing of the costing
// workbook.
func DefaultCatalogOptions() CatalogOptions {
	return CatalogOptions{
		EquipmentSheet:  DefaultEquipmentSheet,
		EquipmentColumn: DefaultEquipmentColumn,
		MissingValues:   append([]string(nil), DefaultMissingValues...),
		Rules:           DefaultPriceRules(),
		DefaultPrice:    DefaultBasePrice(),
		Categories:      DefaultCategories(),
		Formulas:        DefaultFormulas(),
	}
}

// Catalog is everything one extract run writes.
type Catalog struct {
	Equipment  []EquipmentItem
	Categories []Category
	Formulas   FormulaSet
	// Warnings holds sheet read failures that were tolerated.
	Warnings []error
}

// BuildCatalog reads the equipment column from src and prices it. An
// unreadable equipment sheet is recorded in Warnings and leaves the catalog
// with no equipment; categories and formulas are still returned. Any other
// read error is returned as is.
func BuildCatalog(src SheetReader, opts CatalogOptions) (*Catalog, error) {
	categories := opts.Categories
	if categories == nil {
		categories = DefaultCategories()
	}
	catalog := &Catalog{
		Equipment:  []EquipmentItem{},
		Categories: categories,
		Formulas:   opts.Formulas,
	}

	names, err := ReadEquipmentNames(src, opts.EquipmentSheet, opts.EquipmentColumn, opts.MissingValues)
	if err != nil {
		if errors.Is(err, workbook.ErrSheetUnreadable) {
			catalog.Warnings = append(catalog.Warnings, err)
			return catalog, nil
		}
		return nil, err
	}

	catalog.Equipment = InferEquipment(names, opts.Rules, opts.DefaultPrice)
	return catalog, nil
}

// ReadEquipmentNames returns one optional name per data row under column.
// A missing column is reported as a *workbook.SheetError.
func ReadEquipmentNames(src SheetReader, sheet, column string, placeholders []string) ([]EquipmentName, error) {
	rows, err := src.ReadSheet(sheet)
	if err != nil {
		return nil, err
	}
	cells, err := workbook.Column(rows, column)
	if err != nil {
		return nil, &workbook.SheetError{Sheet: sheet, Err: err}
	}
	return NamesFromCells(cells, placeholders), nil
}
