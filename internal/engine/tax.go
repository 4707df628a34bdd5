package engine

import (
	"github.com/shopspring/decimal"

	"payroll-engine/internal/ratetables"
)

// reliefFraction returns the contribution cut for a gross amount per installment.
// Bands are inclusive at their ceiling; above the last band there is no relief.
func reliefFraction(perInstallment decimal.Decimal, bands []ratetables.ReliefBand) decimal.Decimal {
	for _, b := range bands {
		if perInstallment.LessThanOrEqual(b.MonthlyCeiling) {
			return b.Fraction
		}
	}
	return decimal.Zero
}

// progressiveTax applies the marginal rate of each bracket to the share of base
// that falls inside it.
func progressiveTax(base decimal.Decimal, brackets []ratetables.Bracket) decimal.Decimal {
	tax := decimal.Zero
	for _, b := range brackets {
		if !base.GreaterThan(b.Min) {
			break
		}
		upper := base
		if !b.Unbounded() && b.Max.LessThan(base) {
			upper = *b.Max
		}
		tax = tax.Add(upper.Sub(b.Min).Mul(b.Rate))
	}
	return tax
}

// marginalRate is the rate of the bracket the base falls in, bracket floors inclusive.
func marginalRate(base decimal.Decimal, brackets []ratetables.Bracket) decimal.Decimal {
	for _, b := range brackets {
		if b.Unbounded() || base.LessThan(*b.Max) {
			return b.Rate
		}
	}
	return decimal.Zero
}

func employmentCredit(base decimal.Decimal, c ratetables.EmploymentCredit) decimal.Decimal {
	switch {
	case base.LessThanOrEqual(c.FlatCeiling):
		return c.FlatAmount
	case base.LessThanOrEqual(c.MiddleCeiling):
		width := c.MiddleCeiling.Sub(c.FlatCeiling)
		return c.MiddleBase.Add(c.MiddleVariable.Mul(c.MiddleCeiling.Sub(base)).Div(width))
	case base.LessThanOrEqual(c.UpperCeiling):
		width := c.UpperCeiling.Sub(c.MiddleCeiling)
		return c.UpperAmount.Mul(c.UpperCeiling.Sub(base)).Div(width)
	default:
		return decimal.Zero
	}
}

// incentive grants the flat bonus when the base is at or below the ceiling and
// gross tax exceeds the employment credit alone. Children credit is not part of
// the test.
func incentive(base, grossTax, employment decimal.Decimal, in ratetables.Incentive) (decimal.Decimal, bool) {
	if base.LessThanOrEqual(in.Ceiling) && grossTax.GreaterThan(employment) {
		return in.Amount, true
	}
	return decimal.Zero, false
}
