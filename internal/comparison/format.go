package comparison

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders one cell of a report.
type Formatter[T any] func(T) string

var printer = message.NewPrinter(language.English)

// Probability renders p as a percentage with two decimals, e.g. "34.21%".
func Probability(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}

// Numerical renders v with thousands separators and two decimals.
func Numerical(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// Count renders n with thousands separators.
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

// Name renders a string unchanged.
func Name(s string) string {
	return s
}
