// Package format renders breakdown values the way Italian payslip summaries show them.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Italian)

// Euro formats a whole-euro amount with Italian grouping, e.g. "30.000 €".
func Euro(v float64) string {
	return printer.Sprintf("%.0f €", v)
}

// Percent formats a percentage with two decimals, e.g. "22,26%".
func Percent(v float64) string {
	return printer.Sprintf("%.2f%%", v)
}

// Rate formats a fraction as a percentage, e.g. 0.0919 as "9,19%".
func Rate(v float64) string {
	return Percent(v * 100)
}
