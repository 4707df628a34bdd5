package model

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"payroll-engine/internal/amount"
)

// WorkerProfile is the engine input. GrossAnnualSalary must be positive and the
// keys must exist in the rate tables in use.
type WorkerProfile struct {
	GrossAnnualSalary    decimal.Decimal
	ContractType         string
	CollectiveAgreement  string
	Region               string
	Municipality         string
	HasDependentChildren bool
}

// Amount is a gross salary as sent by clients: either a JSON number or a string
// with Italian punctuation ("30.000,50").
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		d, err := amount.Parse(s)
		if err != nil {
			return err
		}
		a.Decimal = d
		return nil
	}

	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return fmt.Errorf("%w: %s", amount.ErrNotNumeric, b)
	}
	a.Decimal = d
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// ProfileInput is the wire form of a WorkerProfile.
type ProfileInput struct {
	GrossAnnualSalary    *Amount `json:"gross_annual_salary" validate:"required"`
	ContractType         string  `json:"contract_type" validate:"required,max=64"`
	CollectiveAgreement  string  `json:"collective_agreement" validate:"required,max=64"`
	Region               string  `json:"region" validate:"required,max=64"`
	Municipality         string  `json:"municipality,omitempty" validate:"max=64"`
	HasDependentChildren bool    `json:"has_dependent_children"`
}

func (p ProfileInput) Profile() WorkerProfile {
	var gross decimal.Decimal
	if p.GrossAnnualSalary != nil {
		gross = p.GrossAnnualSalary.Decimal
	}
	return WorkerProfile{
		GrossAnnualSalary:    gross,
		ContractType:         p.ContractType,
		CollectiveAgreement:  p.CollectiveAgreement,
		Region:               p.Region,
		Municipality:         p.Municipality,
		HasDependentChildren: p.HasDependentChildren,
	}
}
