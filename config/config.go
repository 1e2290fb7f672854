package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"firecatalog/services"
)

//go:embed sample_config.toml
var sampleConfig string

// Environment variables read by Load.
const (
	EnvConfig    = "FIRECATALOG_CONFIG"
	EnvWorkbook  = "FIRECATALOG_WORKBOOK"
	EnvOutputDir = "FIRECATALOG_OUTPUT_DIR"
	EnvLogLevel  = "FIRECATALOG_LOG_LEVEL"
)

// ErrConfigNotFound is returned when an explicitly named config file is
// missing.
var ErrConfigNotFound = errors.New("config file not found")

// Paths locates the input workbook and the output directory.
type Paths struct {
	Workbook  string `toml:"workbook" yaml:"workbook"`
	OutputDir string `toml:"output_dir" yaml:"output_dir"`
}

// Workbook describes where equipment names live in the workbook.
type Workbook struct {
	EquipmentSheet  string   `toml:"equipment_sheet" yaml:"equipment_sheet"`
	EquipmentColumn string   `toml:"equipment_column" yaml:"equipment_column"`
	MissingValues   []string `toml:"missing_values" yaml:"missing_values"`
}

// Rule is one keyword price entry. Order in the file is match priority.
type Rule struct {
	Keyword string  `toml:"keyword" yaml:"keyword"`
	Price   float64 `toml:"price" yaml:"price"`
}

// Pricing holds the keyword price table and the fallback price.
type Pricing struct {
	DefaultPrice float64 `toml:"default_price" yaml:"default_price"`
	Rules        []Rule  `toml:"rules" yaml:"rules"`
}

// Formulas holds the constants written to formulas.json.
type Formulas struct {
	GSTRate        float64 `toml:"gst_rate" yaml:"gst_rate"`
	MaterialMarkup float64 `toml:"material_markup" yaml:"material_markup"`
	LaborRate      float64 `toml:"labor_rate" yaml:"labor_rate"`
	Overheads      float64 `toml:"overheads" yaml:"overheads"`
}

// Output toggles the optional price list documents.
type Output struct {
	PriceListXLSX  bool   `toml:"price_list_xlsx" yaml:"price_list_xlsx"`
	PriceListPDF   bool   `toml:"price_list_pdf" yaml:"price_list_pdf"`
	PriceListTitle string `toml:"price_list_title" yaml:"price_list_title"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format" yaml:"format"`
	Level  string `toml:"level" yaml:"level"`
}

// Config encapsulates all configuration values for firecatalog.
type Config struct {
	Paths    Paths    `toml:"paths" yaml:"paths"`
	Workbook Workbook `toml:"workbook" yaml:"workbook"`
	Pricing  Pricing  `toml:"pricing" yaml:"pricing"`
	Formulas Formulas `toml:"formulas" yaml:"formulas"`
	Output   Output   `toml:"output" yaml:"output"`
	Logging  Logging  `toml:"logging" yaml:"logging"`
}

// Load locates, parses, and validates a configuration file. An empty path
// falls back to $FIRECATALOG_CONFIG, then ./firecatalog.toml, then
// ~/.config/firecatalog/config.toml; when none exists the defaults are used.
// It returns the config, the path considered, and whether that file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		if err := decodeFile(resolvedPath, &cfg); err != nil {
			return nil, "", false, err
		}
	}

	applyEnvOverrides(&cfg)
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfig))
	}
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("%w: %s", ErrConfigNotFound, expanded)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("config path %s is a directory", expanded)
		}
		return expanded, true, nil
	}

	userPath, err := expandPath(userConfigPath)
	if err != nil {
		return "", false, err
	}
	for _, candidate := range []string{defaultConfigName, userPath} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil
		}
	}
	return userPath, false, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvWorkbook)); v != "" {
		cfg.Paths.Workbook = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutputDir)); v != "" {
		cfg.Paths.OutputDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = v
	}
}

func expandPath(pathValue string) (string, error) {
	if !strings.HasPrefix(pathValue, "~") {
		return filepath.Clean(pathValue), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if pathValue == "~" {
		return home, nil
	}
	if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
		return filepath.Join(home, pathValue[2:]), nil
	}
	return filepath.Clean(pathValue), nil
}

// CreateSample writes a sample configuration file to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// PriceTable returns the configured rules in priority order.
func (c *Config) PriceTable() services.KeywordPriceTable {
	table := make(services.KeywordPriceTable, len(c.Pricing.Rules))
	for i, r := range c.Pricing.Rules {
		table[i] = services.PriceRule{Keyword: r.Keyword, Price: decimal.NewFromFloat(r.Price)}
	}
	return table
}

// FormulaSet returns the formula constants as decimals.
func (c *Config) FormulaSet() services.FormulaSet {
	return services.FormulaSet{
		TaxRate:        decimal.NewFromFloat(c.Formulas.GSTRate),
		MaterialMarkup: decimal.NewFromFloat(c.Formulas.MaterialMarkup),
		LaborRate:      decimal.NewFromFloat(c.Formulas.LaborRate),
		OverheadRate:   decimal.NewFromFloat(c.Formulas.Overheads),
	}
}

// CatalogOptions assembles the options for services.BuildCatalog.
func (c *Config) CatalogOptions() services.CatalogOptions {
	return services.CatalogOptions{
		EquipmentSheet:  c.Workbook.EquipmentSheet,
		EquipmentColumn: c.Workbook.EquipmentColumn,
		MissingValues:   append([]string(nil), c.Workbook.MissingValues...),
		Rules:           c.PriceTable(),
		DefaultPrice:    decimal.NewFromFloat(c.Pricing.DefaultPrice),
		Categories:      services.DefaultCategories(),
		Formulas:        c.FormulaSet(),
	}
}
