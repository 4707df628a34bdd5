package engine

import (
	"github.com/shopspring/decimal"

	"payroll-engine/internal/model"
	"payroll-engine/internal/ratetables"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

type resolved struct {
	contract     ratetables.Contract
	agreement    ratetables.Agreement
	region       ratetables.Region
	municipality ratetables.Municipality
	fallback     bool
}

// resolve checks the profile against the tables. An empty or unknown
// municipality resolves to the default entry; a known one must belong to the
// profile's region unless it is the default entry itself.
func resolve(p model.WorkerProfile, t *ratetables.Tables) (resolved, error) {
	var r resolved

	if !p.GrossAnnualSalary.IsPositive() {
		return r, profileError(ErrCodeInvalidGrossSalary, "gross_annual_salary",
			"gross annual salary must be greater than zero, got %s", p.GrossAnnualSalary)
	}

	var ok bool
	if r.contract, ok = t.Contract(p.ContractType); !ok {
		return r, profileError(ErrCodeUnknownContractType, "contract_type",
			"unknown contract type %q", p.ContractType)
	}
	if r.agreement, ok = t.Agreement(p.CollectiveAgreement); !ok {
		return r, profileError(ErrCodeUnknownAgreement, "collective_agreement",
			"unknown collective agreement %q", p.CollectiveAgreement)
	}
	if r.region, ok = t.Region(p.Region); !ok {
		return r, profileError(ErrCodeUnknownRegion, "region", "unknown region %q", p.Region)
	}

	def := t.DefaultMunicipality()
	m, ok := t.Municipality(p.Municipality)
	switch {
	case !ok:
		r.municipality = def
		r.fallback = true
	case m.Key != def.Key && m.Region != p.Region:
		return r, profileError(ErrCodeMunicipalityRegionMismatch, "municipality",
			"municipality %q belongs to region %q, not %q", m.Key, m.Region, p.Region)
	default:
		r.municipality = m
	}

	return r, nil
}

// Compute runs the payroll pipeline for one profile. Every stage works on
// unrounded values; rounding happens only when the breakdown is filled in.
func Compute(p model.WorkerProfile, t *ratetables.Tables) (model.SalaryBreakdown, error) {
	r, err := resolve(p, t)
	if err != nil {
		return model.SalaryBreakdown{}, err
	}

	gross := p.GrossAnnualSalary
	installments := decimal.NewFromInt(int64(r.agreement.Installments))

	// contributions
	baseRate := r.contract.Rate
	baseContribution := gross.Mul(baseRate)
	reduction := reliefFraction(gross.Div(installments), t.ReliefBands())
	effectiveRate := decimal.Max(decimal.Zero, baseRate.Sub(reduction))
	effectiveContribution := gross.Mul(effectiveRate)
	relief := baseContribution.Sub(effectiveContribution)

	taxable := gross.Sub(effectiveContribution)

	brackets := t.Brackets()
	grossTax := progressiveTax(taxable, brackets)

	employment := employmentCredit(taxable, t.EmploymentCredit())
	children := decimal.Zero
	if p.HasDependentChildren {
		children = t.ChildrenCredit()
	}
	credits := employment.Add(children)
	netTax := decimal.Max(decimal.Zero, grossTax.Sub(credits))

	regional := taxable.Mul(r.region.Rate)
	municipal := taxable.Mul(r.municipality.Rate)

	bonus, eligible := incentive(taxable, grossTax, employment, t.Incentive())

	netAnnual := taxable.Sub(netTax).Sub(regional).Sub(municipal).Add(bonus)
	netInstallment := netAnnual.Div(installments)
	employerCost := gross.Mul(one.Add(t.EmployerOverhead()))
	effective := gross.Sub(netAnnual).Div(gross).Mul(hundred)

	return model.SalaryBreakdown{
		GrossAnnualSalary:     money(gross),
		BaseContribution:      money(baseContribution),
		EffectiveContribution: money(effectiveContribution),
		ContributionRelief:    money(relief),
		TaxableBase:           money(taxable),
		GrossTax:              money(grossTax),
		EmploymentCredit:      money(employment),
		ChildrenCredit:        money(children),
		TotalCredits:          money(credits),
		NetTax:                money(netTax),
		RegionalSurtax:        money(regional),
		MunicipalSurtax:       money(municipal),
		Incentive:             money(bonus),
		NetAnnualPay:          money(netAnnual),
		NetInstallmentPay:     money(netInstallment),
		EmployerCost:          money(employerCost),
		EffectiveRate:         money(effective),

		Installments:              r.agreement.Installments,
		BaseContributionRate:      baseRate.InexactFloat64(),
		ReliefRate:                baseRate.Sub(effectiveRate).InexactFloat64(),
		EffectiveContributionRate: effectiveRate.InexactFloat64(),
		MarginalTaxRate:           marginalRate(taxable, brackets).InexactFloat64(),
		RegionalRate:              r.region.Rate.InexactFloat64(),
		MunicipalRate:             r.municipality.Rate.InexactFloat64(),
		IncentiveEligible:         eligible,

		ContractLabel:        r.contract.Label,
		AgreementLabel:       r.agreement.Label,
		RegionLabel:          r.region.Label,
		Municipality:         r.municipality.Key,
		MunicipalityLabel:    r.municipality.Label,
		MunicipalityFallback: r.fallback,
		FiscalYear:           t.FiscalYear(),
	}, nil
}

// money rounds half away from zero to the cent.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
