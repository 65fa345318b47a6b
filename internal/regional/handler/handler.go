package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"pratyaksh/internal/platform/metrics"
	"pratyaksh/internal/regional"
	dErrors "pratyaksh/pkg/domain-errors"
	"pratyaksh/pkg/platform/httputil"
	"pratyaksh/pkg/requestcontext"
)

// Engine prices stamp duty.
type Engine interface {
	Quote(state string, instrument regional.Instrument, value decimal.Decimal) (regional.Quote, error)
	Coverage() []regional.Coverage
}

type Handler struct {
	engine  Engine
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func New(engine Engine, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{engine: engine, logger: logger, metrics: m}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/regional/calc/stamp-duty", h.HandleStampDuty)
	r.Get("/regional/coverage", h.HandleCoverage)
}

// StampDutyResponse is returned by GET /regional/calc/stamp-duty. The duty is
// a JSON number with two decimals.
type StampDutyResponse struct {
	State            string      `json:"state"`
	Instrument       string      `json:"instrument"`
	StampDutyPayable json.Number `json:"stamp_duty_payable"`
	ActReference     string      `json:"act_reference"`
}

type CoverageEntry struct {
	State        string `json:"state"`
	Instrument   string `json:"instrument"`
	ActReference string `json:"act_reference"`
}

type CoverageResponse struct {
	Coverage []CoverageEntry `json:"coverage"`
}

// HandleStampDuty handles GET /regional/calc/stamp-duty?state&instrument&value.
func (h *Handler) HandleStampDuty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	state := strings.TrimSpace(q.Get("state"))
	if state == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "state is required"))
		return
	}
	instrument := strings.TrimSpace(q.Get("instrument"))
	if instrument == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "instrument is required"))
		return
	}
	value, err := parseValue(q.Get("value"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	quote, err := h.engine.Quote(state, regional.Instrument(instrument), value)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotCovered) {
			h.metrics.IncrementCalculation("regional", "not_covered")
		}
		h.logger.WarnContext(ctx, "stamp duty not quoted",
			"request_id", requestcontext.RequestID(ctx),
			"state", state,
			"instrument", instrument,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.metrics.IncrementCalculation("regional", "covered")
	httputil.WriteJSON(w, http.StatusOK, StampDutyResponse{
		State:            quote.State,
		Instrument:       string(quote.Instrument),
		StampDutyPayable: json.Number(quote.Duty.StringFixed(2)),
		ActReference:     quote.ActReference,
	})
}

// HandleCoverage handles GET /regional/coverage.
func (h *Handler) HandleCoverage(w http.ResponseWriter, _ *http.Request) {
	pairs := h.engine.Coverage()
	resp := CoverageResponse{Coverage: make([]CoverageEntry, 0, len(pairs))}
	for _, c := range pairs {
		resp.Coverage = append(resp.Coverage, CoverageEntry{
			State:        c.State,
			Instrument:   string(c.Instrument),
			ActReference: c.ActReference,
		})
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func parseValue(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, dErrors.New(dErrors.CodeValidation, "value is required")
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, dErrors.New(dErrors.CodeValidation, "value must be a number")
	}
	if err := regional.CheckValue(v); err != nil {
		return decimal.Zero, err
	}
	return v, nil
}
