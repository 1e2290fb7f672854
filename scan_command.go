package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"firecatalog/artifacts"
	"firecatalog/services"
	"firecatalog/workbook"
)

type scanResult struct {
	Sheet   string                     `json:"sheet"`
	Numeric []services.NumericCell     `json:"numeric"`
	Markup  []services.MarkupCandidate `json:"markup"`
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	var (
		sheet   string
		limit   int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "scan [WORKBOOK]",
		Short: "Report positive numbers and markup-like labels in a sheet",
		Long: "Scan a sheet for cells holding positive numbers and for labels that\n" +
			"mention markup or material together with the numbers next to them.\n" +
			"Use the output to fill in the [formulas] section of the config; the\n" +
			"values found are never applied automatically.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(sheet)
			if name == "" {
				name = services.DefaultSummarySheet
			}
			return ctx.withSource(ctx.workbookPath(args), func(src workbook.Source) error {
				rows, err := src.ReadSheet(name)
				if err != nil {
					return err
				}
				result := scanResult{
					Sheet:   name,
					Numeric: services.ScanNumericCells(rows),
					Markup:  services.ScanMarkupCandidates(rows),
				}
				if limit > 0 && len(result.Numeric) > limit {
					result.Numeric = result.Numeric[:limit]
				}
				if result.Numeric == nil {
					result.Numeric = []services.NumericCell{}
				}
				if result.Markup == nil {
					result.Markup = []services.MarkupCandidate{}
				}

				if jsonOut {
					return artifacts.Encode(cmd.OutOrStdout(), result)
				}
				printScan(cmd, result)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet to scan (default \"Summary Sheet\")")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most N numeric cells (0 for all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func printScan(cmd *cobra.Command, result scanResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Numeric cells in %q: %d\n", result.Sheet, len(result.Numeric))
	for _, c := range result.Numeric {
		fmt.Fprintf(out, "  %s\n", c)
	}

	if len(result.Markup) == 0 {
		fmt.Fprintln(out, "No markup candidates found")
		return
	}
	rows := make([][]string, len(result.Markup))
	for i, m := range result.Markup {
		rows[i] = []string{
			fmt.Sprintf("[%d,%d]", m.Row, m.Col),
			m.Label,
			fmt.Sprintf("+%d", m.Offset),
			fmt.Sprintf("%v", m.Value),
		}
	}
	fmt.Fprintln(out, "Markup candidates:")
	fmt.Fprintln(out, renderTable(
		[]string{"Cell", "Label", "Offset", "Value"},
		rows,
		2, 3,
	))
}
