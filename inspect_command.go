package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"firecatalog/workbook"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var previewRows int

	cmd := &cobra.Command{
		Use:   "inspect [WORKBOOK]",
		Short: "List the sheets of a workbook with their shape and first rows",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if previewRows < 0 {
				return fmt.Errorf("--rows must be zero or more, got %d", previewRows)
			}
			return ctx.withSource(ctx.workbookPath(args), func(src workbook.Source) error {
				printSummaries(cmd, workbook.Inspect(src, previewRows))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&previewRows, "rows", "n", 5, "Number of data rows to preview per sheet")
	return cmd
}

func printSummaries(cmd *cobra.Command, summaries []workbook.SheetSummary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d sheets\n", len(summaries))
	for _, s := range summaries {
		fmt.Fprintln(out)
		if s.Err != nil {
			fmt.Fprintf(out, "Sheet %q: unreadable: %v\n", s.Name, s.Err)
			continue
		}
		fmt.Fprintf(out, "Sheet %q: %d rows x %d columns\n", s.Name, s.Rows, s.Columns)
		if len(s.Header) == 0 {
			continue
		}

		headers := make([]string, s.Columns)
		for i := range headers {
			if i < len(s.Header) && s.Header[i] != "" {
				headers[i] = s.Header[i]
			} else {
				headers[i] = fmt.Sprintf("column %d", i+1)
			}
		}
		rows := make([][]string, len(s.Preview))
		for i, r := range s.Preview {
			rows[i] = r.Strings()
		}
		fmt.Fprintln(out, renderTable(headers, rows))
	}
}
