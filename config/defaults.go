package config

import "firecatalog/services"

const (
	defaultWorkbook       = "test.xlsx"
	defaultOutputDir      = "."
	defaultDefaultPrice   = 100.0
	defaultGSTRate        = 0.10
	defaultMaterialMarkup = 1.5
	defaultLaborRate      = 150.0
	defaultOverheads      = 0.15
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultConfigName     = "firecatalog.toml"
	userConfigPath        = "~/.config/firecatalog/config.toml"
)

// Default returns a Config populated with the built-in defaults. Rules and
// MissingValues stay nil so a config file can replace them wholesale; they
// are filled in by Load when the file leaves them out.
func Default() Config {
	return Config{
		Paths: Paths{
			Workbook:  defaultWorkbook,
			OutputDir: defaultOutputDir,
		},
		Workbook: Workbook{
			EquipmentSheet:  services.DefaultEquipmentSheet,
			EquipmentColumn: services.DefaultEquipmentColumn,
		},
		Pricing: Pricing{
			DefaultPrice: defaultDefaultPrice,
		},
		Formulas: Formulas{
			GSTRate:        defaultGSTRate,
			MaterialMarkup: defaultMaterialMarkup,
			LaborRate:      defaultLaborRate,
			Overheads:      defaultOverheads,
		},
		Output: Output{
			PriceListTitle: services.DefaultPriceListTitle,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultRules() []Rule {
	table := services.DefaultPriceRules()
	rules := make([]Rule, len(table))
	for i, r := range table {
		rules[i] = Rule{Keyword: r.Keyword, Price: r.Price.InexactFloat64()}
	}
	return rules
}
