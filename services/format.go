package services

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var audPrinter = message.NewPrinter(language.MustParse("en-AU"))

// FormatAUD formats an amount as Australian dollars with thousands
// separators and exactly two decimal places, e.g. $1,234.50. Negative
// amounts carry a leading minus sign: -$85.00.
func FormatAUD(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	return sign + "$" + audPrinter.Sprintf("%.2f", rounded.InexactFloat64())
}

// FormatPercent renders a rate such as 0.1 as "10%".
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).Round(2).String() + "%"
}
