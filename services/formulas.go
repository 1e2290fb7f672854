package services

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// FormulaSet holds the pricing constants written to formulas.json. The JSON
// keys match what the quoting front end reads.
type FormulaSet struct {
	TaxRate        decimal.Decimal `json:"gstRate"`
	MaterialMarkup decimal.Decimal `json:"materialMarkup"`
	LaborRate      decimal.Decimal `json:"laborRate"`
	OverheadRate   decimal.Decimal `json:"overheads"`
}

// MarshalJSON writes every constant as a JSON number.
func (f FormulaSet) MarshalJSON() ([]byte, error) {
	return marshalUnescaped(struct {
		TaxRate        json.Number `json:"gstRate"`
		MaterialMarkup json.Number `json:"materialMarkup"`
		LaborRate      json.Number `json:"laborRate"`
		OverheadRate   json.Number `json:"overheads"`
	}{
		jsonNumber(f.TaxRate),
		jsonNumber(f.MaterialMarkup),
		jsonNumber(f.LaborRate),
		jsonNumber(f.OverheadRate),
	})
}

// DefaultFormulas returns Australian defaults: 10% GST, 1.5x material markup,
// $150/hour labour and 15% overheads.
func DefaultFormulas() FormulaSet {
	return FormulaSet{
		TaxRate:        decimal.RequireFromString("0.10"),
		MaterialMarkup: decimal.RequireFromString("1.5"),
		LaborRate:      decimal.NewFromInt(150),
		OverheadRate:   decimal.RequireFromString("0.15"),
	}
}

// Validate keeps rates within [0, 1] and requires a positive markup and
// labour rate.
func (f FormulaSet) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.TaxRate, validation.By(decimalBetween(decimal.Zero, decimal.NewFromInt(1)))),
		validation.Field(&f.MaterialMarkup, validation.By(positiveDecimal)),
		validation.Field(&f.LaborRate, validation.By(positiveDecimal)),
		validation.Field(&f.OverheadRate, validation.By(decimalBetween(decimal.Zero, decimal.NewFromInt(1)))),
	)
}

// GrossPrice applies GST to a base price, rounded to cents.
func (f FormulaSet) GrossPrice(base decimal.Decimal) decimal.Decimal {
	return base.Mul(decimal.NewFromInt(1).Add(f.TaxRate)).Round(2)
}

func decimalBetween(low, high decimal.Decimal) validation.RuleFunc {
	return func(value interface{}) error {
		d, ok := value.(decimal.Decimal)
		if !ok {
			return validation.NewError("validation_decimal", "must be a decimal")
		}
		if d.LessThan(low) || d.GreaterThan(high) {
			return validation.NewError("validation_decimal_range",
				"must be between "+low.String()+" and "+high.String())
		}
		return nil
	}
}
