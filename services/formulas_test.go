package services

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultFormulas(t *testing.T) {
	f := DefaultFormulas()
	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"gst", f.TaxRate, "0.1"},
		{"markup", f.MaterialMarkup, "1.5"},
		{"labour", f.LaborRate, "150"},
		{"overheads", f.OverheadRate, "0.15"},
	}
	for _, c := range checks {
		if !c.got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
	if err := f.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestFormulaSetValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FormulaSet)
		wantErr string
	}{
		{"zero gst allowed", func(f *FormulaSet) { f.TaxRate = decimal.Zero }, ""},
		{"gst above one", func(f *FormulaSet) { f.TaxRate = decimal.NewFromInt(10) }, "gstRate"},
		{"negative overheads", func(f *FormulaSet) { f.OverheadRate = decimal.NewFromFloat(-0.1) }, "overheads"},
		{"zero markup", func(f *FormulaSet) { f.MaterialMarkup = decimal.Zero }, "materialMarkup"},
		{"negative labour", func(f *FormulaSet) { f.LaborRate = decimal.NewFromInt(-1) }, "laborRate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := DefaultFormulas()
			tt.mutate(&f)
			err := f.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestGrossPrice(t *testing.T) {
	f := DefaultFormulas()
	tests := []struct {
		base, want string
	}{
		{"100", "110"},
		{"85", "93.5"},
		{"0.99", "1.09"},
	}
	for _, tt := range tests {
		got := f.GrossPrice(decimal.RequireFromString(tt.base))
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("GrossPrice(%s) = %s, want %s", tt.base, got, tt.want)
		}
	}
}
