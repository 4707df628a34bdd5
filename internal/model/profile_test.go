package model

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll-engine/internal/amount"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"number", `30000`, "30000"},
		{"fractional number", `30000.5`, "30000.5"},
		{"italian string", `"30.000,50"`, "30000.5"},
		{"plain string", `"28000"`, "28000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tc.in), &a))
			assert.True(t, a.Equal(decimal.RequireFromString(tc.want)), "got %s", a.Decimal)
		})
	}
}

func TestAmount_UnmarshalJSON_Rejects(t *testing.T) {
	var a Amount
	err := a.UnmarshalJSON([]byte(`"trentamila"`))
	assert.ErrorIs(t, err, amount.ErrNotNumeric)

	err = a.UnmarshalJSON([]byte(`"0"`))
	assert.ErrorIs(t, err, amount.ErrNotPositive)

	err = a.UnmarshalJSON([]byte(`true`))
	assert.ErrorIs(t, err, amount.ErrNotNumeric)
}

func TestProfileInput_Profile(t *testing.T) {
	var req CalculationRequest
	body := `{
		"profile": {
			"gross_annual_salary": "35.000",
			"contract_type": "fixed_term",
			"collective_agreement": "metalmeccanico",
			"region": "toscana",
			"municipality": "firenze",
			"has_dependent_children": true
		}
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	p := req.Profile.Profile()
	assert.True(t, p.GrossAnnualSalary.Equal(decimal.NewFromInt(35000)))
	assert.Equal(t, "fixed_term", p.ContractType)
	assert.Equal(t, "metalmeccanico", p.CollectiveAgreement)
	assert.Equal(t, "toscana", p.Region)
	assert.Equal(t, "firenze", p.Municipality)
	assert.True(t, p.HasDependentChildren)
}

func TestProfileInput_Profile_MissingSalary(t *testing.T) {
	p := ProfileInput{ContractType: "standard"}.Profile()
	assert.True(t, p.GrossAnnualSalary.IsZero())
}
