package services

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"firecatalog/workbook"
)

const (
	// FireSafetyCategory is the category every exported item belongs to.
	FireSafetyCategory = "Fire Safety Equipment"
	// UnitEach is the selling unit of every exported item.
	UnitEach = "each"

	descriptionPrefix = "Fire safety equipment: "
)

// DefaultMissingValues are the placeholders treated as an absent name,
// compared case-insensitively. They cover what spreadsheet exports and
// dataframe tools write into blank cells.
var DefaultMissingValues = []string{"nan", "n/a", "#n/a", "null", "none"}

// EquipmentName is an optional equipment name. Valid is false for empty
// cells and placeholders.
type EquipmentName struct {
	Value string
	Valid bool
}

// Name returns a present equipment name.
func Name(value string) EquipmentName {
	return EquipmentName{Value: value, Valid: true}
}

// EquipmentItem is one entry of equipment.json.
type EquipmentItem struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	Unit        string          `json:"unit"`
	Description string          `json:"description,omitempty"`
}

// MarshalJSON writes BasePrice as a JSON number; the front end does
// arithmetic on it.
func (e EquipmentItem) MarshalJSON() ([]byte, error) {
	return marshalUnescaped(struct {
		ID          int         `json:"id"`
		Name        string      `json:"name"`
		Category    string      `json:"category"`
		BasePrice   json.Number `json:"basePrice"`
		Unit        string      `json:"unit"`
		Description string      `json:"description,omitempty"`
	}{e.ID, e.Name, e.Category, jsonNumber(e.BasePrice), e.Unit, e.Description})
}

func jsonNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// marshalUnescaped is json.Marshal without HTML escaping, so names such as
// "Sounder & Strobe" are written as is.
func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Category is one entry of categories.json.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DefaultCategories returns the single fire safety category.
func DefaultCategories() []Category {
	return []Category{
		{ID: 1, Name: FireSafetyCategory, Description: "Fire detection and safety equipment"},
	}
}

// NameFromString trims raw and returns an absent name when it is blank or
// one of placeholders.
func NameFromString(raw string, placeholders []string) EquipmentName {
	value := strings.TrimSpace(raw)
	if value == "" {
		return EquipmentName{}
	}
	for _, p := range placeholders {
		if strings.EqualFold(value, strings.TrimSpace(p)) {
			return EquipmentName{}
		}
	}
	return Name(value)
}

// NameFromCell converts a worksheet cell. Numeric cells keep their text.
func NameFromCell(c workbook.Cell, placeholders []string) EquipmentName {
	if c.IsEmpty() {
		return EquipmentName{}
	}
	return NameFromString(c.Text, placeholders)
}

// NamesFromCells converts a column of cells, keeping one entry per cell.
func NamesFromCells(cells []workbook.Cell, placeholders []string) []EquipmentName {
	names := make([]EquipmentName, len(cells))
	for i, c := range cells {
		names[i] = NameFromCell(c, placeholders)
	}
	return names
}

// NamesFromStrings converts raw strings, keeping one entry per value.
func NamesFromStrings(values []string, placeholders []string) []EquipmentName {
	names := make([]EquipmentName, len(values))
	for i, v := range values {
		names[i] = NameFromString(v, placeholders)
	}
	return names
}
