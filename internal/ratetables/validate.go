package ratetables

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidTables = errors.New("invalid rate tables")

var one = decimal.NewFromInt(1)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidTables, fmt.Sprintf(format, args...))
}

func validRate(r decimal.Decimal) bool {
	return !r.IsNegative() && r.LessThan(one)
}

func validate(doc *document) error {
	if err := validateBrackets(doc.Brackets); err != nil {
		return err
	}

	if len(doc.Contracts) == 0 {
		return invalid("no contract types")
	}
	for k, c := range doc.Contracts {
		if !validRate(c.Rate) {
			return invalid("contract %q: rate %s outside [0,1)", k, c.Rate)
		}
	}

	prev := decimal.Zero
	for i, b := range doc.Relief {
		if !b.MonthlyCeiling.GreaterThan(prev) {
			return invalid("relief band %d: ceiling %s not above %s", i, b.MonthlyCeiling, prev)
		}
		if !validRate(b.Fraction) {
			return invalid("relief band %d: fraction %s outside [0,1)", i, b.Fraction)
		}
		prev = b.MonthlyCeiling
	}

	ec := doc.EmploymentCredit
	if !ec.FlatCeiling.IsPositive() ||
		!ec.MiddleCeiling.GreaterThan(ec.FlatCeiling) ||
		!ec.UpperCeiling.GreaterThan(ec.MiddleCeiling) {
		return invalid("employment credit thresholds must be positive and ascending")
	}
	if ec.FlatAmount.IsNegative() || ec.MiddleBase.IsNegative() ||
		ec.MiddleVariable.IsNegative() || ec.UpperAmount.IsNegative() {
		return invalid("employment credit amounts must be non-negative")
	}

	if doc.ChildrenCredit.IsNegative() {
		return invalid("children credit %s is negative", doc.ChildrenCredit)
	}
	if doc.Incentive.Ceiling.IsNegative() || doc.Incentive.Amount.IsNegative() {
		return invalid("incentive values must be non-negative")
	}
	if doc.EmployerOverhead.IsNegative() {
		return invalid("employer overhead %s is negative", doc.EmployerOverhead)
	}

	if len(doc.Agreements) == 0 {
		return invalid("no collective agreements")
	}
	for k, a := range doc.Agreements {
		switch a.Installments {
		case 12, 13, 14:
		default:
			return invalid("agreement %q: %d installments, want 12, 13 or 14", k, a.Installments)
		}
	}

	if len(doc.Regions) == 0 {
		return invalid("no regions")
	}
	for k, r := range doc.Regions {
		if !validRate(r.Rate) {
			return invalid("region %q: rate %s outside [0,1)", k, r.Rate)
		}
	}

	for k, m := range doc.Municipalities {
		if _, ok := doc.Regions[m.Region]; !ok {
			return invalid("municipality %q: unknown region %q", k, m.Region)
		}
		if !validRate(m.Rate) {
			return invalid("municipality %q: rate %s outside [0,1)", k, m.Rate)
		}
	}
	if _, ok := doc.Municipalities[doc.DefaultMunicipality]; !ok {
		return invalid("default municipality %q is not in the municipality table", doc.DefaultMunicipality)
	}

	return nil
}

// validateBrackets requires contiguous bands starting at zero with only the
// last one unbounded.
func validateBrackets(brackets []Bracket) error {
	if len(brackets) == 0 {
		return invalid("no tax brackets")
	}
	if !brackets[0].Min.IsZero() {
		return invalid("first bracket starts at %s, want 0", brackets[0].Min)
	}

	last := len(brackets) - 1
	for i, b := range brackets {
		if !validRate(b.Rate) {
			return invalid("bracket %d: rate %s outside [0,1)", i, b.Rate)
		}
		if b.Unbounded() {
			if i != last {
				return invalid("bracket %d: only the last bracket may be unbounded", i)
			}
			continue
		}
		if i == last {
			return invalid("last bracket must be unbounded")
		}
		if !b.Max.GreaterThan(b.Min) {
			return invalid("bracket %d: max %s not above min %s", i, b.Max, b.Min)
		}
		if !brackets[i+1].Min.Equal(*b.Max) {
			return invalid("bracket %d: next bracket starts at %s, want %s", i, brackets[i+1].Min, b.Max)
		}
	}
	return nil
}
