// Package services provides equipment price inference and the catalog
// documents derived from the fire safety costing workbook.
package services

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// DefaultBasePrice is applied when no keyword matches an equipment name.
func DefaultBasePrice() decimal.Decimal {
	return decimal.NewFromInt(100)
}

// PriceRule assigns Price to names containing Keyword.
type PriceRule struct {
	Keyword string
	Price   decimal.Decimal
}

// Validate requires a keyword and a strictly positive price.
func (r PriceRule) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Keyword, validation.Required),
		validation.Field(&r.Price, validation.By(positiveDecimal)),
	)
}

// KeywordPriceTable is an ordered list of rules. The first rule whose
// keyword occurs in a name wins, so more specific keywords must come first.
type KeywordPriceTable []PriceRule

// DefaultPriceRules returns the built-in keyword table.
func DefaultPriceRules() KeywordPriceTable {
	return KeywordPriceTable{
		{Keyword: "Fire Indicator Panel", Price: decimal.NewFromInt(2500)},
		{Keyword: "OWS Panel", Price: decimal.NewFromInt(1800)},
		{Keyword: "Fire Fan Control", Price: decimal.NewFromInt(450)},
		{Keyword: "Mimic Panel", Price: decimal.NewFromInt(800)},
		{Keyword: "Wireless Translator", Price: decimal.NewFromInt(350)},
		{Keyword: "Detector", Price: decimal.NewFromInt(120)},
		{Keyword: "Sounder", Price: decimal.NewFromInt(85)},
		{Keyword: "Call Point", Price: decimal.NewFromInt(65)},
		{Keyword: "Module", Price: decimal.NewFromInt(95)},
		{Keyword: "Isolator", Price: decimal.NewFromInt(85)},
		{Keyword: "Panel", Price: decimal.NewFromInt(1200)},
		{Keyword: "Unit", Price: decimal.NewFromInt(200)},
	}
}

// Validate checks every rule. An empty table is valid; every name then
// receives the default price.
func (t KeywordPriceTable) Validate() error {
	return validation.Validate([]PriceRule(t))
}

// Match returns the first rule whose keyword is a case-insensitive
// substring of name.
func (t KeywordPriceTable) Match(name string) (PriceRule, bool) {
	lowerName := strings.ToLower(name)
	for _, rule := range t {
		if rule.Keyword == "" {
			continue
		}
		if strings.Contains(lowerName, strings.ToLower(rule.Keyword)) {
			return rule, true
		}
	}
	return PriceRule{}, false
}

// Price returns the matched rule's price or defaultPrice.
func (t KeywordPriceTable) Price(name string, defaultPrice decimal.Decimal) decimal.Decimal {
	if rule, ok := t.Match(name); ok {
		return rule.Price
	}
	return defaultPrice
}

// InferEquipment prices each present name and numbers the survivors from 1
// in input order. Absent and blank names are dropped without using an id.
func InferEquipment(names []EquipmentName, table KeywordPriceTable, defaultPrice decimal.Decimal) []EquipmentItem {
	items := make([]EquipmentItem, 0, len(names))
	for _, n := range names {
		value := strings.TrimSpace(n.Value)
		if !n.Valid || value == "" {
			continue
		}
		items = append(items, EquipmentItem{
			ID:          len(items) + 1,
			Name:        value,
			Category:    FireSafetyCategory,
			BasePrice:   table.Price(value, defaultPrice),
			Unit:        UnitEach,
			Description: descriptionPrefix + value,
		})
	}
	return items
}

func positiveDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal")
	}
	if !d.IsPositive() {
		return errors.New("must be greater than zero")
	}
	return nil
}
