package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"payroll-engine/internal/compare"
	"payroll-engine/internal/engine"
	"payroll-engine/internal/metrics"
	"payroll-engine/internal/model"
	"payroll-engine/internal/ratetables"
)

type Handler struct {
	tables   *ratetables.Tables
	log      *zap.Logger
	validate *validator.Validate
	metrics  *metrics.Metrics
}

// New wires a handler. m may be nil, in which case /metrics is not served.
func New(tables *ratetables.Tables, log *zap.Logger, m *metrics.Metrics) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		tables:   tables,
		log:      log,
		validate: validator.New(),
		metrics:  m,
	}
}

func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/calculate":
		if !allow(ctx, fasthttp.MethodPost) {
			return
		}
		h.handleCalculation(ctx)
	case "/compare":
		if !allow(ctx, fasthttp.MethodPost) {
			return
		}
		h.handleCompare(ctx)
	case "/tables":
		if !allow(ctx, fasthttp.MethodGet) {
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, h.tables.Catalog())
	case "/healthz":
		if !allow(ctx, fasthttp.MethodGet) {
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case "/metrics":
		if h.metrics == nil {
			writeError(ctx, fasthttp.StatusNotFound, "Not found")
			return
		}
		h.metrics.Handler()(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) handleCalculation(ctx *fasthttp.RequestCtx) {
	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, validationMessage(err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, h.process(&req))
}

func (h *Handler) handleCompare(ctx *fasthttp.RequestCtx) {
	var req model.CompareRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, validationMessage(err))
		return
	}

	base := h.process(&model.CalculationRequest{Profile: req.Base})
	variant := h.process(&model.CalculationRequest{Profile: req.Variant})

	changes, err := compare.Breakdowns(base.CalculationResult.Breakdown, variant.CalculationResult.Breakdown)
	if err != nil {
		h.log.Error("compare breakdowns", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "Comparison failed")
		return
	}
	if changes == nil {
		changes = []model.FieldChange{}
	}

	writeJSON(ctx, fasthttp.StatusOK, model.CompareResponse{
		Base:    base,
		Variant: variant,
		Changes: changes,
	})
}

func (h *Handler) process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()
	resp := engine.Process(req, h.tables)
	h.metrics.Observe(resp, time.Since(start))

	meta := resp.CalculationMetadata
	if meta.CalculationOutcome == model.OutcomeFailure {
		fields := []zap.Field{zap.String("calculation_id", meta.CalculationID)}
		for _, m := range resp.CalculationResult.Messages {
			fields = append(fields, zap.String(strings.ToLower(m.Code), m.Message))
		}
		h.log.Warn("calculation failed", fields...)
		return resp
	}

	b := resp.CalculationResult.Breakdown
	h.log.Debug("calculation completed",
		zap.String("calculation_id", meta.CalculationID),
		zap.Float64("gross_annual_salary", b.GrossAnnualSalary),
		zap.Float64("net_annual_pay", b.NetAnnualPay),
		zap.Bool("municipality_fallback", b.MunicipalityFallback),
	)
	return resp
}

func allow(ctx *fasthttp.RequestCtx, method string) bool {
	if string(ctx.Method()) == method {
		return true
	}
	ctx.Response.Header.Set("Allow", method)
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
	return false
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request: " + err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
	}
	return "Invalid request: " + strings.Join(parts, "; ")
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.Error("encode response", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
