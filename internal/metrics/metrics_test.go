package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"payroll-engine/internal/model"
)

func response(outcome string, fallback bool) *model.CalculationResponse {
	resp := &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{CalculationOutcome: outcome},
	}
	if outcome == model.OutcomeSuccess {
		resp.CalculationResult.Breakdown = &model.SalaryBreakdown{MunicipalityFallback: fallback}
	}
	return resp
}

func TestObserve(t *testing.T) {
	m := New()

	m.Observe(response(model.OutcomeSuccess, false), time.Millisecond)
	m.Observe(response(model.OutcomeSuccess, true), time.Millisecond)
	m.Observe(response(model.OutcomeFailure, false), time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.calculations.WithLabelValues(model.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues(model.OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fallbacks))
}

func TestObserve_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Observe(response(model.OutcomeSuccess, true), time.Millisecond)
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.Observe(response(model.OutcomeSuccess, false), time.Millisecond)

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/metrics")
	m.Handler()(&ctx)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	body := string(ctx.Response.Body())
	assert.True(t, strings.Contains(body, `payroll_calculations_total{outcome="SUCCESS"} 1`), body)
	assert.Contains(t, body, "payroll_calculation_duration_seconds_count 1")
}
