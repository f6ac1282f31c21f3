package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amounts = message.NewPrinter(language.English)

// GrandTotalAmount formats a grand total for the item table: thousands
// separators and three decimal places.
func GrandTotalAmount(v float64) string {
	return amounts.Sprintf("%.3f", v)
}

// SummaryAmount formats an amount for dashboard summaries: thousands
// separators and two decimal places.
func SummaryAmount(v float64) string {
	return amounts.Sprintf("%.2f", v)
}
