// Package amount parses user-entered euro amounts written with Italian punctuation.
package amount

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmpty       = errors.New("amount is empty")
	ErrNotNumeric  = errors.New("amount is not numeric")
	ErrNotPositive = errors.New("amount must be greater than zero")
)

// groupedOnly matches integers grouped by dots, e.g. 1.234 or 30.000.000.
var groupedOnly = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)

var stripper = strings.NewReplacer(
	"€", "",
	"EUR", "",
	"eur", "",
	" ", "",
	"\u00a0", "",
	"\u202f", "",
	"'", "",
)

// Parse reads a gross amount such as "30.000", "30.000,50", "€ 35.000" or
// "28000.75" and returns it as a positive decimal.
//
// A comma is always the decimal separator and dots before it are grouping. When
// there is no comma, dots are grouping only if every group after the first has
// exactly three digits. Otherwise the single dot is a decimal point.
func Parse(s string) (decimal.Decimal, error) {
	raw := stripper.Replace(strings.TrimSpace(s))
	if raw == "" {
		return decimal.Zero, ErrEmpty
	}

	var normalized string
	switch {
	case strings.Contains(raw, ","):
		if strings.Count(raw, ",") > 1 {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrNotNumeric, s)
		}
		normalized = strings.Replace(strings.ReplaceAll(raw, ".", ""), ",", ".", 1)
	case groupedOnly.MatchString(raw):
		normalized = strings.ReplaceAll(raw, ".", "")
	default:
		normalized = raw
	}

	for _, r := range normalized {
		if (r < '0' || r > '9') && r != '.' && r != '-' {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrNotNumeric, s)
		}
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotPositive, s)
	}
	return d, nil
}
