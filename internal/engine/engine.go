package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"payroll-engine/internal/model"
	"payroll-engine/internal/ratetables"
)

// Process runs one calculation and wraps it in the response envelope. A profile
// that violates a precondition yields a CRITICAL message, outcome FAILURE and no
// breakdown.
func Process(req *model.CalculationRequest, tables *ratetables.Tables) *model.CalculationResponse {
	start := time.Now()

	var messages []model.CalculationMessage
	var result *model.SalaryBreakdown
	outcome := model.OutcomeSuccess

	breakdown, err := Compute(req.Profile.Profile(), tables)
	if err != nil {
		code, text := "INVALID_PROFILE", err.Error()
		var pe *ProfileError
		if errors.As(err, &pe) {
			code, text = string(pe.Code), pe.Message
		}
		messages = append(messages, model.CalculationMessage{
			ID:      len(messages),
			Level:   model.LevelCritical,
			Code:    code,
			Message: text,
		})
		outcome = model.OutcomeFailure
	} else {
		result = &breakdown
		if breakdown.MunicipalityFallback {
			messages = append(messages, model.CalculationMessage{
				ID:    len(messages),
				Level: model.LevelWarning,
				Code:  model.CodeMunicipalityFallback,
				Message: fmt.Sprintf("Unknown municipality %q, using %s",
					req.Profile.Municipality, breakdown.MunicipalityLabel),
			})
		}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if messages == nil {
		messages = []model.CalculationMessage{}
	}

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
			FiscalYear:             tables.FiscalYear(),
		},
		CalculationResult: model.CalculationResult{
			Messages:  messages,
			Breakdown: result,
		},
	}
}
