package services

import "github.com/shopspring/decimal"

// DefaultPriceListTitle heads generated price list documents.
const DefaultPriceListTitle = "Fire Safety Equipment Price List"

// PriceListRow is one equipment line of a price list.
type PriceListRow struct {
	ID         int
	Name       string
	Category   string
	Unit       string
	BasePrice  decimal.Decimal
	GrossPrice decimal.Decimal // incl. GST
}

// PriceListData holds everything the Excel and PDF price lists render.
type PriceListData struct {
	Title           string
	ReferenceNumber string
	CreatedDate     string
	TaxRate         decimal.Decimal
	Rows            []PriceListRow
}

// NewPriceListData builds price list rows from priced equipment. Gross
// prices apply the formula set's GST rate.
func NewPriceListData(items []EquipmentItem, formulas FormulaSet, title, ref, date string) PriceListData {
	if title == "" {
		title = DefaultPriceListTitle
	}
	rows := make([]PriceListRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, PriceListRow{
			ID:         item.ID,
			Name:       item.Name,
			Category:   item.Category,
			Unit:       item.Unit,
			BasePrice:  item.BasePrice,
			GrossPrice: formulas.GrossPrice(item.BasePrice),
		})
	}
	return PriceListData{
		Title:           title,
		ReferenceNumber: ref,
		CreatedDate:     date,
		TaxRate:         formulas.TaxRate,
		Rows:            rows,
	}
}
