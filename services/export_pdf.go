package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	mutedColor  = &props.Color{Red: 80, Green: 80, Blue: 80}
	stripeColor = &props.Color{Red: 245, Green: 245, Blue: 245}
)

// GeneratePriceListPDF renders the price list as an A4 portrait PDF.
func GeneratePriceListPDF(data PriceListData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addPriceListHeader(m, data)
	addPriceListTableHeader(m)
	for i, r := range data.Rows {
		addPriceListRow(m, r, i%2 == 1)
	}
	addPriceListSummary(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addPriceListHeader(m core.Maroto, data PriceListData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New("Reference: "+data.ReferenceNumber, props.Text{
					Size:  9,
					Align: align.Left,
					Color: mutedColor,
				}),
			),
			col.New(6).Add(
				text.New("Date: "+data.CreatedDate, props.Text{
					Size:  9,
					Align: align.Right,
					Color: mutedColor,
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

func addPriceListTableHeader(m core.Maroto) {
	headerCell := &props.Cell{BackgroundColor: &props.Color{Red: 178, Green: 34, Blue: 34}}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(headerCell),
			col.New(5).Add(text.New("Equipment", headerTextLeft)).WithStyle(headerCell),
			col.New(2).Add(text.New("Unit", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Base Price", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Incl. GST", headerText)).WithStyle(headerCell),
		),
	)
}

func addPriceListRow(m core.Maroto, r PriceListRow, striped bool) {
	base := props.Text{Size: 8, Align: align.Center}
	left := base
	left.Align = align.Left
	right := base
	right.Align = align.Right

	cols := []core.Col{
		col.New(1).Add(text.New(fmt.Sprintf("%d", r.ID), base)),
		col.New(5).Add(text.New(r.Name, left)),
		col.New(2).Add(text.New(r.Unit, base)),
		col.New(2).Add(text.New(FormatAUD(r.BasePrice), right)),
		col.New(2).Add(text.New(FormatAUD(r.GrossPrice), right)),
	}
	if striped {
		cell := &props.Cell{BackgroundColor: stripeColor}
		for i, c := range cols {
			cols[i] = c.WithStyle(cell)
		}
	}
	m.AddRows(row.New(7).Add(cols...))
}

func addPriceListSummary(m core.Maroto, data PriceListData) {
	m.AddRows(row.New(6))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	label := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New("Items", label)).WithStyle(summaryCell),
			col.New(4).Add(text.New(fmt.Sprintf("%d", len(data.Rows)), label)).WithStyle(summaryCell),
		),
		row.New(8).Add(
			col.New(8).Add(text.New("GST rate", label)).WithStyle(summaryCell),
			col.New(4).Add(text.New(FormatPercent(data.TaxRate), label)).WithStyle(summaryCell),
		),
	)
}
