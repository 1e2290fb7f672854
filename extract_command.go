package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"firecatalog/artifacts"
	"firecatalog/services"
	"firecatalog/workbook"
)

type extractOptions struct {
	outputDir string
	xlsx      bool
	pdf       bool
	verbose   bool
}

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var opts extractOptions

	cmd := &cobra.Command{
		Use:   "extract [WORKBOOK]",
		Short: "Write equipment, category and formula JSON from a workbook",
		Long: "Read the equipment list from WORKBOOK (an .xlsx file or a directory of\n" +
			"<sheet>.csv files), price every name with the keyword table, and write\n" +
			"equipment.json, categories.json and formulas.json to the output directory.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.config
			if strings.TrimSpace(opts.outputDir) == "" {
				opts.outputDir = cfg.Paths.OutputDir
			}
			if !cmd.Flags().Changed("xlsx") {
				opts.xlsx = cfg.Output.PriceListXLSX
			}
			if !cmd.Flags().Changed("pdf") {
				opts.pdf = cfg.Output.PriceListPDF
			}

			return ctx.withSource(ctx.workbookPath(args), func(src workbook.Source) error {
				return runExtract(cmd, ctx, src, opts)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "Directory for the generated files")
	cmd.Flags().BoolVar(&opts.xlsx, "xlsx", false, "Also write an Excel price list")
	cmd.Flags().BoolVar(&opts.pdf, "pdf", false, "Also write a PDF price list")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print how each keyword priced the equipment")
	return cmd
}

func runExtract(cmd *cobra.Command, ctx *commandContext, src workbook.Source, opts extractOptions) error {
	logger := ctx.logger
	catalogOpts := ctx.config.CatalogOptions()

	catalog, err := services.BuildCatalog(src, catalogOpts)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}
	for _, w := range catalog.Warnings {
		logger.Warn().Err(w).Msg("equipment sheet unreadable; writing an empty equipment list")
	}

	paths, err := artifacts.WriteCatalog(opts.outputDir, catalog)
	if err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	for _, p := range paths {
		logger.Info().Str("path", p).Msg("wrote artifact")
	}

	if opts.xlsx || opts.pdf {
		written, err := writePriceLists(ctx, catalog, opts)
		if err != nil {
			return err
		}
		paths = append(paths, written...)
	}

	out := cmd.OutOrStdout()
	if opts.verbose {
		report := services.NewMatchReport(catalog.Equipment, catalogOpts.Rules, catalogOpts.DefaultPrice)
		fmt.Fprintln(out, renderMatchReport(report))
		fmt.Fprintf(out, "%d of %d items used the default price\n", report.Fallbacks(), report.Total)
	}
	fmt.Fprintf(out, "Extracted %d equipment items into %d files in %s\n", len(catalog.Equipment), len(paths), opts.outputDir)
	return nil
}

func writePriceLists(ctx *commandContext, catalog *services.Catalog, opts extractOptions) ([]string, error) {
	now := time.Now()
	data := services.NewPriceListData(
		catalog.Equipment,
		catalog.Formulas,
		ctx.config.Output.PriceListTitle,
		services.NewPriceListReference(now),
		now.Format("2006-01-02"),
	)

	documents := []struct {
		enabled  bool
		name     string
		generate func(services.PriceListData) ([]byte, error)
	}{
		{opts.xlsx, artifacts.PriceListXLSXFile, services.GeneratePriceListExcel},
		{opts.pdf, artifacts.PriceListPDFFile, services.GeneratePriceListPDF},
	}

	var paths []string
	for _, doc := range documents {
		if !doc.enabled {
			continue
		}
		body, err := doc.generate(data)
		if err != nil {
			return paths, fmt.Errorf("generate %s: %w", doc.name, err)
		}
		path, err := artifacts.WriteFile(opts.outputDir, doc.name, body)
		if err != nil {
			return paths, fmt.Errorf("write %s: %w", doc.name, err)
		}
		ctx.logger.Info().Str("path", path).Str("reference", data.ReferenceNumber).Msg("wrote price list")
		paths = append(paths, path)
	}
	return paths, nil
}

func renderMatchReport(report services.MatchReport) string {
	rows := make([][]string, 0, len(report.Hits))
	for _, hit := range report.Hits {
		keyword := hit.Keyword
		if hit.Outcome == services.OutcomeFallback {
			keyword = "(default)"
		}
		rows = append(rows, []string{keyword, services.FormatAUD(hit.Price), hit.Outcome, fmt.Sprintf("%d", hit.Count)})
	}
	return renderTable(
		[]string{"Keyword", "Price", "Outcome", "Items"},
		rows,
		1, 3,
	)
}
