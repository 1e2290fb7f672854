package workbook

// SheetSummary describes the shape of one sheet and its first rows.
type SheetSummary struct {
	Name    string
	Rows    int
	Columns int
	Header  []string
	Preview []Row
	Err     error
}

// Inspect summarizes every sheet in src. previewRows limits how many data
// rows after the header are kept. A sheet that fails to read is reported
// through SheetSummary.Err rather than stopping the walk.
func Inspect(src Source, previewRows int) []SheetSummary {
	names := src.SheetNames()
	summaries := make([]SheetSummary, 0, len(names))
	for _, name := range names {
		summary := SheetSummary{Name: name}
		rows, err := src.ReadSheet(name)
		if err != nil {
			summary.Err = err
			summaries = append(summaries, summary)
			continue
		}

		summary.Rows = len(rows)
		for _, row := range rows {
			if len(row) > summary.Columns {
				summary.Columns = len(row)
			}
		}
		if len(rows) > 0 {
			summary.Header = rows[0].Strings()
			data := rows[1:]
			if previewRows >= 0 && len(data) > previewRows {
				data = data[:previewRows]
			}
			summary.Preview = data
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
