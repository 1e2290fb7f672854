package config

import (
	"strings"

	"firecatalog/services"
)

func (c *Config) normalize() {
	c.Paths.Workbook = strings.TrimSpace(c.Paths.Workbook)
	c.Paths.OutputDir = strings.TrimSpace(c.Paths.OutputDir)
	if c.Paths.OutputDir == "" {
		c.Paths.OutputDir = defaultOutputDir
	}

	c.Workbook.EquipmentSheet = strings.TrimSpace(c.Workbook.EquipmentSheet)
	c.Workbook.EquipmentColumn = strings.TrimSpace(c.Workbook.EquipmentColumn)
	if c.Workbook.MissingValues == nil {
		c.Workbook.MissingValues = append([]string(nil), services.DefaultMissingValues...)
	}

	if c.Pricing.Rules == nil {
		c.Pricing.Rules = defaultRules()
	}
	for i := range c.Pricing.Rules {
		c.Pricing.Rules[i].Keyword = strings.TrimSpace(c.Pricing.Rules[i].Keyword)
	}

	if strings.TrimSpace(c.Output.PriceListTitle) == "" {
		c.Output.PriceListTitle = services.DefaultPriceListTitle
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
