package engine

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"payroll-engine/internal/model"
	"payroll-engine/internal/ratetables"
)

func request(t *testing.T, body string) *model.CalculationRequest {
	t.Helper()
	var req model.CalculationRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("decode request: %v", err)
	}
	return &req
}

func TestProcess(t *testing.T) {
	req := request(t, `{
		"profile": {
			"gross_annual_salary": "30.000",
			"contract_type": "standard",
			"collective_agreement": "commercio",
			"region": "lombardia",
			"municipality": "milano"
		}
	}`)

	resp := Process(req, ratetables.Default())

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if _, err := uuid.Parse(resp.CalculationMetadata.CalculationID); err != nil {
		t.Fatalf("calculation id is not a uuid: %q", resp.CalculationMetadata.CalculationID)
	}
	if resp.CalculationMetadata.FiscalYear != 2024 {
		t.Fatalf("expected fiscal year 2024, got %d", resp.CalculationMetadata.FiscalYear)
	}
	if len(resp.CalculationResult.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(resp.CalculationResult.Messages))
	}

	b := resp.CalculationResult.Breakdown
	if b == nil {
		t.Fatal("expected a breakdown")
	}
	if b.NetAnnualPay != 23322.61 {
		t.Fatalf("expected net annual 23322.61, got %.2f", b.NetAnnualPay)
	}
	if b.NetInstallmentPay != 1665.90 {
		t.Fatalf("expected net per installment 1665.90, got %.2f", b.NetInstallmentPay)
	}
}

func TestProcess_MunicipalityFallback(t *testing.T) {
	req := request(t, `{
		"profile": {
			"gross_annual_salary": 30000,
			"contract_type": "standard",
			"collective_agreement": "commercio",
			"region": "lombardia",
			"municipality": "vigevano"
		}
	}`)

	resp := Process(req, ratetables.Default())

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	msgs := resp.CalculationResult.Messages
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Level != model.LevelWarning || msgs[0].Code != model.CodeMunicipalityFallback {
		t.Fatalf("unexpected message %+v", msgs[0])
	}
	if msgs[0].ID != 0 {
		t.Fatalf("expected message id 0, got %d", msgs[0].ID)
	}
	if !resp.CalculationResult.Breakdown.MunicipalityFallback {
		t.Fatal("expected breakdown to flag the fallback")
	}
}

func TestProcess_InvalidProfile(t *testing.T) {
	req := request(t, `{
		"profile": {
			"gross_annual_salary": 30000,
			"contract_type": "standard",
			"collective_agreement": "commercio",
			"region": "lombardia",
			"municipality": "napoli"
		}
	}`)

	resp := Process(req, ratetables.Default())

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationResult.Breakdown != nil {
		t.Fatal("expected no breakdown on failure")
	}
	msgs := resp.CalculationResult.Messages
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Level != model.LevelCritical {
		t.Fatalf("expected CRITICAL, got %s", msgs[0].Level)
	}
	if msgs[0].Code != string(ErrCodeMunicipalityRegionMismatch) {
		t.Fatalf("expected %s, got %s", ErrCodeMunicipalityRegionMismatch, msgs[0].Code)
	}
}

func TestProcess_MissingSalary(t *testing.T) {
	req := request(t, `{
		"profile": {
			"contract_type": "standard",
			"collective_agreement": "commercio",
			"region": "lombardia"
		}
	}`)

	resp := Process(req, ratetables.Default())

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if got := resp.CalculationResult.Messages[0].Code; got != string(ErrCodeInvalidGrossSalary) {
		t.Fatalf("expected %s, got %s", ErrCodeInvalidGrossSalary, got)
	}
}
