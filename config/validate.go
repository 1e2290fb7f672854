package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	logFormats = []interface{}{"console", "json"}
	logLevels  = []interface{}{"debug", "info", "warn", "error"}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	sections := []struct {
		name string
		err  error
	}{
		{"paths", c.validatePaths()},
		{"workbook", c.validateWorkbook()},
		{"pricing", c.validatePricing()},
		{"formulas", c.validateFormulas()},
		{"logging", c.validateLogging()},
	}
	for _, s := range sections {
		if s.err != nil {
			return fmt.Errorf("invalid config: %s: %w", s.name, s.err)
		}
	}
	return nil
}

func (c *Config) validatePaths() error {
	return validation.Errors{
		"workbook":   validation.Validate(c.Paths.Workbook, validation.Required),
		"output_dir": validation.Validate(c.Paths.OutputDir, validation.Required),
	}.Filter()
}

func (c *Config) validateWorkbook() error {
	return validation.Errors{
		"equipment_sheet":  validation.Validate(c.Workbook.EquipmentSheet, validation.Required),
		"equipment_column": validation.Validate(c.Workbook.EquipmentColumn, validation.Required),
	}.Filter()
}

func (c *Config) validatePricing() error {
	errs := validation.Errors{
		"default_price": validation.Validate(c.Pricing.DefaultPrice, validation.Required, validation.Min(0.0).Exclusive()),
	}
	for i, r := range c.Pricing.Rules {
		key := fmt.Sprintf("rules[%d]", i)
		errs[key] = validation.Errors{
			"keyword": validation.Validate(r.Keyword, validation.Required),
			"price":   validation.Validate(r.Price, validation.Required, validation.Min(0.0).Exclusive()),
		}.Filter()
	}
	return errs.Filter()
}

func (c *Config) validateFormulas() error {
	return validation.Errors{
		"gst_rate":        validation.Validate(c.Formulas.GSTRate, validation.Min(0.0), validation.Max(1.0)),
		"material_markup": validation.Validate(c.Formulas.MaterialMarkup, validation.Required, validation.Min(0.0).Exclusive()),
		"labor_rate":      validation.Validate(c.Formulas.LaborRate, validation.Required, validation.Min(0.0).Exclusive()),
		"overheads":       validation.Validate(c.Formulas.Overheads, validation.Min(0.0), validation.Max(1.0)),
	}.Filter()
}

func (c *Config) validateLogging() error {
	return validation.Errors{
		"format": validation.Validate(c.Logging.Format, validation.In(logFormats...)),
		"level":  validation.Validate(c.Logging.Level, validation.In(logLevels...)),
	}.Filter()
}
