package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"firecatalog/artifacts"
	"firecatalog/testhelpers"
	"firecatalog/workbook"
)

// setupCLITest isolates the test from real config files and environment.
func setupCLITest(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	for _, key := range []string{"FIRECATALOG_CONFIG", "FIRECATALOG_WORKBOOK", "FIRECATALOG_OUTPUT_DIR", "FIRECATALOG_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	t.Chdir(dir)
	return dir
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func readEquipment(t *testing.T, dir string) []map[string]any {
	t.Helper()
	var items []map[string]any
	body := testhelpers.ReadFile(t, filepath.Join(dir, artifacts.EquipmentFile))
	if err := json.Unmarshal([]byte(body), &items); err != nil {
		t.Fatalf("equipment.json invalid: %v\n%s", err, body)
	}
	return items
}

func TestExtractWritesCatalog(t *testing.T) {
	setupCLITest(t)
	path := testhelpers.NewWorkbook(t, testhelpers.CostingSheets()...)
	out := filepath.Join(t.TempDir(), "data")

	stdout, stderr, err := runCLI(t, "extract", path, "-o", out)
	if err != nil {
		t.Fatalf("extract: %v\nstderr: %s", err, stderr)
	}
	testhelpers.AssertContains(t, stdout, "Extracted 4 equipment items into 3 files")
	testhelpers.AssertContains(t, stderr, "wrote artifact")

	items := readEquipment(t, out)
	want := []struct {
		name  string
		price float64
	}{
		{"Fire Indicator Panel 2 Loop", 2500},
		{"Photoelectric Smoke Detector", 120},
		{"Sounder Base", 85},
		{"Generic Widget", 100},
	}
	if len(items) != len(want) {
		t.Fatalf("equipment = %d items, want %d", len(items), len(want))
	}
	for i, w := range want {
		if items[i]["id"] != float64(i+1) || items[i]["name"] != w.name || items[i]["basePrice"] != w.price {
			t.Errorf("item %d = %v, want %s at %v", i, items[i], w.name, w.price)
		}
	}

	testhelpers.AssertContains(t, testhelpers.ReadFile(t, filepath.Join(out, artifacts.FormulasFile)),
		`"gstRate": 0.1`, `"materialMarkup": 1.5`, `"laborRate": 150`, `"overheads": 0.15`)
	testhelpers.AssertContains(t, testhelpers.ReadFile(t, filepath.Join(out, artifacts.CategoriesFile)),
		`"name": "Fire Safety Equipment"`)
}

func TestExtractUsesConfiguredDefaults(t *testing.T) {
	dir := setupCLITest(t)
	src := testhelpers.NewCSVDir(t, testhelpers.CostingSheets()...)
	if err := os.WriteFile(filepath.Join(dir, "firecatalog.toml"), []byte(
		"[paths]\nworkbook = \""+filepath.ToSlash(src)+"\"\noutput_dir = \"out\"\n"+
			"[pricing]\ndefault_price = 10.0\n[[pricing.rules]]\nkeyword = \"Sounder\"\nprice = 99.0\n",
	), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	stdout, stderr, err := runCLI(t, "extract", "--verbose")
	if err != nil {
		t.Fatalf("extract: %v\nstderr: %s", err, stderr)
	}
	testhelpers.AssertContains(t, stdout, "Sounder", "(default)", "resolved", "fallback", "$99.00", "$10.00",
		"3 of 4 items used the default price")

	items := readEquipment(t, filepath.Join(dir, "out"))
	if len(items) != 4 {
		t.Fatalf("equipment = %v", items)
	}
	if items[2]["basePrice"] != 99.0 || items[0]["basePrice"] != 10.0 {
		t.Errorf("unexpected prices: %v", items)
	}
}

func TestExtractEnvOverridesConfigAndFlagOverridesEnv(t *testing.T) {
	dir := setupCLITest(t)
	path := testhelpers.NewWorkbook(t, testhelpers.CostingSheets()...)
	t.Setenv("FIRECATALOG_WORKBOOK", path)
	t.Setenv("FIRECATALOG_OUTPUT_DIR", filepath.Join(dir, "env-out"))

	if _, stderr, err := runCLI(t, "extract"); err != nil {
		t.Fatalf("extract: %v\nstderr: %s", err, stderr)
	}
	if len(readEquipment(t, filepath.Join(dir, "env-out"))) != 4 {
		t.Fatal("expected env output directory to hold the catalog")
	}

	if _, stderr, err := runCLI(t, "extract", "-o", filepath.Join(dir, "flag-out")); err != nil {
		t.Fatalf("extract: %v\nstderr: %s", err, stderr)
	}
	if len(readEquipment(t, filepath.Join(dir, "flag-out"))) != 4 {
		t.Fatal("expected flag output directory to hold the catalog")
	}
}

func TestExtractMissingWorkbookWritesNothing(t *testing.T) {
	dir := setupCLITest(t)
	out := filepath.Join(dir, "out")

	_, stderr, err := runCLI(t, "extract", filepath.Join(dir, "missing.xlsx"), "-o", out)
	if !errors.Is(err, workbook.ErrSourceNotFound) {
		t.Fatalf("extract error = %v, want ErrSourceNotFound", err)
	}
	if !strings.Contains(err.Error(), "missing.xlsx") {
		t.Errorf("extract error = %q, want the workbook path", err)
	}
	if strings.Contains(stderr, "missing.xlsx") {
		t.Errorf("open failure logged as well as returned: %q", stderr)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("expected no output directory, stat err = %v", err)
	}
}

func TestExtractPriceListFlagOverridesConfig(t *testing.T) {
	dir := setupCLITest(t)
	path := testhelpers.NewWorkbook(t, testhelpers.CostingSheets()...)
	if err := os.WriteFile(filepath.Join(dir, "firecatalog.toml"), []byte(
		"[output]\nprice_list_xlsx = true\nprice_list_pdf = true\n",
	), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantXLSX bool
		wantPDF  bool
	}{
		{"config enables both", nil, true, true},
		{"flags disable both", []string{"--xlsx=false", "--pdf=false"}, false, false},
		{"flag disables pdf only", []string{"--pdf=false"}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := t.TempDir()
			args := append([]string{"extract", path, "-o", out}, tt.args...)
			if _, stderr, err := runCLI(t, args...); err != nil {
				t.Fatalf("extract: %v\nstderr: %s", err, stderr)
			}
			for _, f := range []struct {
				name string
				want bool
			}{
				{artifacts.PriceListXLSXFile, tt.wantXLSX},
				{artifacts.PriceListPDFFile, tt.wantPDF},
			} {
				_, err := os.Stat(filepath.Join(out, f.name))
				if got := err == nil; got != f.want {
					t.Errorf("%s written = %v, want %v", f.name, got, f.want)
				}
			}
		})
	}
}

func TestExtractMissingEquipmentSheetStillWritesFormulas(t *testing.T) {
	dir := setupCLITest(t)
	path := testhelpers.NewWorkbook(t, testhelpers.Sheet{Name: "Summary Sheet", Rows: [][]any{{"Project"}}})
	out := filepath.Join(dir, "out")

	stdout, stderr, err := runCLI(t, "extract", path, "-o", out)
	if err != nil {
		t.Fatalf("extract: %v\nstderr: %s", err, stderr)
	}
	testhelpers.AssertContains(t, stdout, "Extracted 0 equipment items")
	testhelpers.AssertContains(t, stderr, "equipment sheet unreadable")

	if got := strings.TrimSpace(testhelpers.ReadFile(t, filepath.Join(out, artifacts.EquipmentFile))); got != "[]" {
		t.Fatalf("equipment.json = %q, want []", got)
	}
	for _, name := range []string{artifacts.CategoriesFile, artifacts.FormulasFile} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

func TestExtractPriceLists(t *testing.T) {
	setupCLITest(t)
	path := testhelpers.NewWorkbook(t, testhelpers.CostingSheets()...)
	out := t.TempDir()

	stdout, stderr, err := runCLI(t, "--log-format", "json", "extract", path, "-o", out, "--xlsx", "--pdf")
	if err != nil {
		t.Fatalf("extract: %v\nstderr: %s", err, stderr)
	}
	testhelpers.AssertContains(t, stdout, "into 5 files")
	testhelpers.AssertContains(t, stderr, `"message":"wrote price list"`, `"reference":"PL-`)

	pdf := testhelpers.ReadFile(t, filepath.Join(out, artifacts.PriceListPDFFile))
	if !strings.HasPrefix(pdf, "%PDF-") {
		t.Errorf("price-list.pdf does not look like a PDF")
	}

	src, err := workbook.Open(filepath.Join(out, artifacts.PriceListXLSXFile))
	if err != nil {
		t.Fatalf("open price list: %v", err)
	}
	defer src.Close()
	rows, err := src.ReadSheet("Price List")
	if err != nil {
		t.Fatalf("read price list: %v", err)
	}
	if len(rows) < 6 || rows[5].At(1).Text != "Fire Indicator Panel 2 Loop" {
		t.Fatalf("unexpected price list rows: %v", rows)
	}
}

func TestInspect(t *testing.T) {
	setupCLITest(t)
	path := testhelpers.NewWorkbook(t, testhelpers.CostingSheets()...)

	stdout, stderr, err := runCLI(t, "inspect", path, "--rows", "1")
	if err != nil {
		t.Fatalf("inspect: %v\nstderr: %s", err, stderr)
	}
	testhelpers.AssertContains(t, stdout,
		"3 sheets",
		`Sheet "Summary Sheet": 5 rows x 3 columns`,
		`Sheet "Costing Sheet": 2 rows x 3 columns`,
		"Smoke Detector",
		"Fire Indicator Panel 2 Loop",
	)
	if strings.Contains(stdout, "Sounder Base") {
		t.Errorf("preview should stop after one row:\n%s", stdout)
	}
}

func TestScanJSON(t *testing.T) {
	setupCLITest(t)
	path := testhelpers.NewWorkbook(t, testhelpers.CostingSheets()...)

	stdout, stderr, err := runCLI(t, "scan", path, "--json")
	if err != nil {
		t.Fatalf("scan: %v\nstderr: %s", err, stderr)
	}

	var result scanResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if result.Sheet != "Summary Sheet" {
		t.Errorf("sheet = %q", result.Sheet)
	}
	if len(result.Numeric) != 3 {
		t.Errorf("numeric = %+v, want 3 positive cells", result.Numeric)
	}
	if len(result.Markup) != 1 || result.Markup[0].Value != 1.5 || result.Markup[0].Offset != 2 {
		t.Errorf("markup = %+v", result.Markup)
	}
}

func TestScanTextWithLimit(t *testing.T) {
	setupCLITest(t)
	path := testhelpers.NewWorkbook(t, testhelpers.CostingSheets()...)

	stdout, _, err := runCLI(t, "scan", path, "--sheet", "Costing Sheet", "--limit", "1")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	testhelpers.AssertContains(t, stdout, `Numeric cells in "Costing Sheet": 1`, "[1,1]: 10", "No markup candidates found")
}

func TestConfigInitAndValidate(t *testing.T) {
	dir := setupCLITest(t)
	target := filepath.Join(dir, "conf", "firecatalog.toml")

	out, _, err := runCLI(t, "config", "init", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	testhelpers.AssertContains(t, out, "Wrote sample configuration")

	if _, _, err := runCLI(t, "config", "init", target); err == nil {
		t.Fatal("expected error when config already exists")
	}

	out, _, err = runCLI(t, "--config", target, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	testhelpers.AssertContains(t, out, "Config path: "+target, "Fire Indicator Panel", "2500.00", "Configuration valid")
}

func TestInvalidLogLevelFlag(t *testing.T) {
	setupCLITest(t)

	for _, level := range []string{"loud", "warning"} {
		_, _, err := runCLI(t, "--log-level", level, "inspect", "missing.xlsx")
		if err == nil || !strings.Contains(err.Error(), "log level") {
			t.Errorf("--log-level %s: expected log level error, got %v", level, err)
		}
	}
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "firecatalog ") {
		t.Fatalf("unexpected version output %q", out)
	}
}
