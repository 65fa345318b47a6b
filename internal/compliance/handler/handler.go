package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pratyaksh/internal/compliance"
	"pratyaksh/internal/platform/metrics"
	dErrors "pratyaksh/pkg/domain-errors"
	"pratyaksh/pkg/platform/httputil"
	"pratyaksh/pkg/requestcontext"
)

// Calculator is the compliance math the handler exposes.
type Calculator interface {
	DueDates(fyEnd time.Time) compliance.DueDates
	Penalty(due, filed time.Time) compliance.PenaltyAssessment
	Assess(fyEnd time.Time, ft compliance.FilingType, asOf time.Time) compliance.Assessment
}

// Handler serves the compliance calculator endpoints.
type Handler struct {
	calc     Calculator
	logger   *slog.Logger
	metrics  *metrics.Metrics
	location *time.Location
}

type Option func(*Handler)

// WithLocation sets the calendar zone that decides "today" when a request
// carries no filing date.
func WithLocation(loc *time.Location) Option {
	return func(h *Handler) {
		if loc != nil {
			h.location = loc
		}
	}
}

func New(calc Calculator, logger *slog.Logger, m *metrics.Metrics, opts ...Option) *Handler {
	h := &Handler{
		calc:     calc,
		logger:   logger,
		metrics:  m,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts compliance endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/compliance/calculate", h.HandleCalculate)
	r.Get("/compliance/due-dates", h.HandleDueDates)
	r.Get("/compliance/penalty", h.HandlePenalty)
}

// HandleCalculate handles GET /compliance/calculate?fy_end&filing_type[&filed_on].
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	fyEnd, err := httputil.RequiredQueryDate(r, "fy_end")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	ft, err := compliance.ParseFilingType(r.URL.Query().Get("filing_type"))
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeValidation, err.Error()))
		return
	}
	asOf, err := h.filedOn(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result := h.calc.Assess(fyEnd, ft, asOf)
	h.metrics.IncrementCalculation("compliance", string(result.Status.RiskLevel))
	h.logger.InfoContext(ctx, "compliance assessed",
		"request_id", requestID,
		"filing_type", ft,
		"days_delayed", result.Status.DaysDelayed,
		"risk_level", result.Status.RiskLevel,
	)

	httputil.WriteJSON(w, http.StatusOK, toAssessmentResponse(result, asOf))
}

// HandleDueDates handles GET /compliance/due-dates?fy_end.
func (h *Handler) HandleDueDates(w http.ResponseWriter, r *http.Request) {
	fyEnd, err := httputil.RequiredQueryDate(r, "fy_end")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	dates := h.calc.DueDates(fyEnd)
	h.metrics.IncrementCalculation("compliance", "due_dates")
	httputil.WriteJSON(w, http.StatusOK, toDueDatesResponse(dates))
}

// HandlePenalty handles GET /compliance/penalty?due_date[&filed_on].
func (h *Handler) HandlePenalty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	due, err := httputil.RequiredQueryDate(r, "due_date")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	filed, err := h.filedOn(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	p := h.calc.Penalty(due, filed)
	h.metrics.IncrementCalculation("compliance", string(p.RiskLevel))
	h.logger.InfoContext(ctx, "penalty calculated",
		"request_id", requestcontext.RequestID(ctx),
		"days_delayed", p.DaysDelayed,
		"additional_fee", p.AdditionalFee,
	)

	httputil.WriteJSON(w, http.StatusOK, PenaltyResponse{
		DueDate:        httputil.FormatDate(compliance.Date(due)),
		FiledOn:        httputil.FormatDate(compliance.Date(filed)),
		StatusResponse: toStatus(p),
	})
}

// filedOn returns the filed_on parameter, or today's date in the handler's
// calendar zone at request time.
func (h *Handler) filedOn(r *http.Request) (time.Time, error) {
	filed, ok, err := httputil.QueryDate(r, "filed_on")
	if err != nil {
		return time.Time{}, err
	}
	if ok {
		return filed, nil
	}
	return compliance.Date(requestcontext.Now(r.Context()).In(h.location)), nil
}
