package model

// SalaryBreakdown is the result of one engine run. Monetary fields are euro,
// rounded to the cent on their own; rates are fractions except EffectiveRate,
// which is a percentage.
type SalaryBreakdown struct {
	GrossAnnualSalary     float64 `json:"gross_annual_salary"`
	BaseContribution      float64 `json:"base_contribution"`
	EffectiveContribution float64 `json:"effective_contribution"`
	ContributionRelief    float64 `json:"contribution_relief"`
	TaxableBase           float64 `json:"taxable_base"`
	GrossTax              float64 `json:"gross_tax"`
	EmploymentCredit      float64 `json:"employment_credit"`
	ChildrenCredit        float64 `json:"children_credit"`
	TotalCredits          float64 `json:"total_credits"`
	NetTax                float64 `json:"net_tax"`
	RegionalSurtax        float64 `json:"regional_surtax"`
	MunicipalSurtax       float64 `json:"municipal_surtax"`
	Incentive             float64 `json:"incentive"`
	NetAnnualPay          float64 `json:"net_annual_pay"`
	NetInstallmentPay     float64 `json:"net_installment_pay"`
	EmployerCost          float64 `json:"employer_cost"`
	EffectiveRate         float64 `json:"effective_rate"`

	Installments              int     `json:"installments"`
	BaseContributionRate      float64 `json:"base_contribution_rate"`
	ReliefRate                float64 `json:"relief_rate"`
	EffectiveContributionRate float64 `json:"effective_contribution_rate"`
	MarginalTaxRate           float64 `json:"marginal_tax_rate"`
	RegionalRate              float64 `json:"regional_rate"`
	MunicipalRate             float64 `json:"municipal_rate"`
	IncentiveEligible         bool    `json:"incentive_eligible"`

	ContractLabel        string `json:"contract_label"`
	AgreementLabel       string `json:"agreement_label"`
	RegionLabel          string `json:"region_label"`
	Municipality         string `json:"municipality"`
	MunicipalityLabel    string `json:"municipality_label"`
	MunicipalityFallback bool   `json:"municipality_fallback"`
	FiscalYear           int    `json:"fiscal_year"`
}
