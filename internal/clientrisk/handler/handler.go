package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pratyaksh/internal/clientrisk"
	"pratyaksh/internal/platform/metrics"
	dErrors "pratyaksh/pkg/domain-errors"
	"pratyaksh/pkg/platform/httputil"
	"pratyaksh/pkg/requestcontext"
)

// Scorer computes client trust reports.
type Scorer interface {
	Score(latePayments, deviations, litigations int) clientrisk.Report
}

type Handler struct {
	scorer  Scorer
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func New(scorer Scorer, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{scorer: scorer, logger: logger, metrics: m}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/client-risk/score-client", h.HandleScoreClient)
}

// ScoreResponse is returned by GET /client-risk/score-client.
type ScoreResponse struct {
	Score    int    `json:"score"`
	Status   string `json:"status"`
	Advisory string `json:"advisory"`
}

// HandleScoreClient handles
// GET /client-risk/score-client?late_payments&deviations&litigations. Missing
// counts are zero.
func (h *Handler) HandleScoreClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counts := make([]int, 3)
	for i, name := range []string{"late_payments", "deviations", "litigations"} {
		v, err := httputil.QueryInt(r, name, 0)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		if v < 0 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s must be non-negative", name)))
			return
		}
		counts[i] = v
	}

	report := h.scorer.Score(counts[0], counts[1], counts[2])
	h.metrics.IncrementCalculation("client_risk", string(report.Status))
	h.logger.InfoContext(ctx, "client scored",
		"request_id", requestcontext.RequestID(ctx),
		"score", report.Score,
		"status", report.Status,
	)

	httputil.WriteJSON(w, http.StatusOK, ScoreResponse{
		Score:    report.Score,
		Status:   string(report.Status),
		Advisory: report.Advisory,
	})
}
