package model

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
	FiscalYear             int    `json:"fiscal_year"`
}

type CalculationResult struct {
	Messages  []CalculationMessage `json:"messages"`
	Breakdown *SalaryBreakdown     `json:"breakdown"`
}

// FieldChange is one breakdown field that differs between two calculations.
type FieldChange struct {
	Field   string      `json:"field"`
	Base    interface{} `json:"base"`
	Variant interface{} `json:"variant"`
	Delta   *float64    `json:"delta,omitempty"`
}

type CompareResponse struct {
	Base    *CalculationResponse `json:"base"`
	Variant *CalculationResponse `json:"variant"`
	Changes []FieldChange        `json:"changes"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
