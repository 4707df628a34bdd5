package ratetables

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Bracket is one progressive tax band. A nil Max means the band has no ceiling.
type Bracket struct {
	Min  decimal.Decimal  `yaml:"min" json:"min"`
	Max  *decimal.Decimal `yaml:"max" json:"max"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate"`
}

func (b Bracket) Unbounded() bool {
	return b.Max == nil
}

// ReliefBand cuts the employee contribution rate by Fraction while the gross
// salary per installment stays at or below MonthlyCeiling.
type ReliefBand struct {
	MonthlyCeiling decimal.Decimal `yaml:"monthly_ceiling" json:"monthly_ceiling"`
	Fraction       decimal.Decimal `yaml:"fraction" json:"fraction"`
}

// EmploymentCredit holds the constants of the three-band employment tax credit.
type EmploymentCredit struct {
	FlatCeiling    decimal.Decimal `yaml:"flat_ceiling" json:"flat_ceiling"`
	FlatAmount     decimal.Decimal `yaml:"flat_amount" json:"flat_amount"`
	MiddleCeiling  decimal.Decimal `yaml:"middle_ceiling" json:"middle_ceiling"`
	MiddleBase     decimal.Decimal `yaml:"middle_base" json:"middle_base"`
	MiddleVariable decimal.Decimal `yaml:"middle_variable" json:"middle_variable"`
	UpperCeiling   decimal.Decimal `yaml:"upper_ceiling" json:"upper_ceiling"`
	UpperAmount    decimal.Decimal `yaml:"upper_amount" json:"upper_amount"`
}

type Incentive struct {
	Ceiling decimal.Decimal `yaml:"ceiling" json:"ceiling"`
	Amount  decimal.Decimal `yaml:"amount" json:"amount"`
}

type Contract struct {
	Key   string          `yaml:"-" json:"key"`
	Label string          `yaml:"label" json:"label"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

type Agreement struct {
	Key          string `yaml:"-" json:"key"`
	Label        string `yaml:"label" json:"label"`
	Installments int    `yaml:"installments" json:"installments"`
}

type Region struct {
	Key   string          `yaml:"-" json:"key"`
	Label string          `yaml:"label" json:"label"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

type Municipality struct {
	Key    string          `yaml:"-" json:"key"`
	Label  string          `yaml:"label" json:"label"`
	Region string          `yaml:"region" json:"region"`
	Rate   decimal.Decimal `yaml:"rate" json:"rate"`
}

// document is the on-disk shape of a table set.
type document struct {
	FiscalYear          int                     `yaml:"fiscal_year"`
	Brackets            []Bracket               `yaml:"brackets"`
	Contracts           map[string]Contract     `yaml:"contracts"`
	Relief              []ReliefBand            `yaml:"relief"`
	EmploymentCredit    EmploymentCredit        `yaml:"employment_credit"`
	ChildrenCredit      decimal.Decimal         `yaml:"children_credit"`
	Incentive           Incentive               `yaml:"incentive"`
	EmployerOverhead    decimal.Decimal         `yaml:"employer_overhead"`
	DefaultMunicipality string                  `yaml:"default_municipality"`
	Regions             map[string]Region       `yaml:"regions"`
	Municipalities      map[string]Municipality `yaml:"municipalities"`
	Agreements          map[string]Agreement    `yaml:"agreements"`
}

// Tables is a validated, read-only rate table set. It is safe for concurrent use:
// nothing mutates it after Parse returns, and accessors hand out copies.
type Tables struct {
	doc document
}

func (t *Tables) FiscalYear() int {
	return t.doc.FiscalYear
}

func (t *Tables) Brackets() []Bracket {
	out := make([]Bracket, len(t.doc.Brackets))
	copy(out, t.doc.Brackets)
	return out
}

func (t *Tables) ReliefBands() []ReliefBand {
	out := make([]ReliefBand, len(t.doc.Relief))
	copy(out, t.doc.Relief)
	return out
}

func (t *Tables) EmploymentCredit() EmploymentCredit {
	return t.doc.EmploymentCredit
}

func (t *Tables) ChildrenCredit() decimal.Decimal {
	return t.doc.ChildrenCredit
}

func (t *Tables) Incentive() Incentive {
	return t.doc.Incentive
}

func (t *Tables) EmployerOverhead() decimal.Decimal {
	return t.doc.EmployerOverhead
}

func (t *Tables) Contract(key string) (Contract, bool) {
	c, ok := t.doc.Contracts[key]
	return c, ok
}

func (t *Tables) Agreement(key string) (Agreement, bool) {
	a, ok := t.doc.Agreements[key]
	return a, ok
}

func (t *Tables) Region(key string) (Region, bool) {
	r, ok := t.doc.Regions[key]
	return r, ok
}

func (t *Tables) Municipality(key string) (Municipality, bool) {
	m, ok := t.doc.Municipalities[key]
	return m, ok
}

// DefaultMunicipality is the "national average" entry used when a profile names
// no municipality or one the tables do not know.
func (t *Tables) DefaultMunicipality() Municipality {
	return t.doc.Municipalities[t.doc.DefaultMunicipality]
}

func (t *Tables) Contracts() []Contract {
	out := make([]Contract, 0, len(t.doc.Contracts))
	for _, c := range t.doc.Contracts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func (t *Tables) Agreements() []Agreement {
	out := make([]Agreement, 0, len(t.doc.Agreements))
	for _, a := range t.doc.Agreements {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func (t *Tables) Regions() []Region {
	out := make([]Region, 0, len(t.doc.Regions))
	for _, r := range t.doc.Regions {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// MunicipalitiesIn lists the municipalities of a region sorted by label, followed
// by the default entry, which is selectable from every region.
func (t *Tables) MunicipalitiesIn(region string) []Municipality {
	var out []Municipality
	for key, m := range t.doc.Municipalities {
		if key == t.doc.DefaultMunicipality || m.Region != region {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return append(out, t.DefaultMunicipality())
}

// Catalog is the selectable content of a table set, as offered to form clients.
type Catalog struct {
	FiscalYear int             `json:"fiscal_year"`
	Contracts  []Contract      `json:"contracts"`
	Agreements []Agreement     `json:"agreements"`
	Regions    []RegionCatalog `json:"regions"`
	Default    string          `json:"default_municipality"`
}

type RegionCatalog struct {
	Region
	Municipalities []Municipality `json:"municipalities"`
}

func (t *Tables) Catalog() Catalog {
	regions := t.Regions()
	out := make([]RegionCatalog, 0, len(regions))
	for _, r := range regions {
		out = append(out, RegionCatalog{Region: r, Municipalities: t.MunicipalitiesIn(r.Key)})
	}
	return Catalog{
		FiscalYear: t.FiscalYear(),
		Contracts:  t.Contracts(),
		Agreements: t.Agreements(),
		Regions:    out,
		Default:    t.doc.DefaultMunicipality,
	}
}
