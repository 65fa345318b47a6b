package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pratyaksh/internal/governance"
	"pratyaksh/internal/governance/models"
	"pratyaksh/internal/governance/service"
	"pratyaksh/internal/platform/metrics"
	"pratyaksh/internal/platform/middleware"
	dErrors "pratyaksh/pkg/domain-errors"
	"pratyaksh/pkg/platform/httputil"
	"pratyaksh/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service is the governance behavior the handler exposes.
type Service interface {
	CheckDIN(ctx context.Context, raw string) (*service.DINCheck, error)
	PredictDisqualification(ctx context.Context, nonFilingYears int) governance.DisqualificationRisk
	AnalyzeResolution(ctx context.Context, agenda string) (governance.ResolutionRiskReport, error)
	RegisterDirector(ctx context.Context, din, fullName string) (*models.Director, error)
	GetDirector(ctx context.Context, din string) (*models.Director, error)
	ListDirectors(ctx context.Context) ([]*models.Director, error)
	ChangeDirectorStatus(ctx context.Context, din, status, reason string) (*models.Director, error)
	AssessDisqualification(ctx context.Context, din string, nonFilingYears int) (*service.DisqualificationAssessment, error)
	FileResolution(ctx context.Context, title, agenda string) (*models.BoardResolution, error)
	GetResolution(ctx context.Context, id uuid.UUID) (*models.BoardResolution, error)
	ListResolutions(ctx context.Context) ([]*models.BoardResolution, error)
}

// Handler serves the governance endpoints. Registry writes require a bearer
// token; calculators and reads are public.
type Handler struct {
	service   Service
	logger    *slog.Logger
	metrics   *metrics.Metrics
	validator middleware.TokenValidator
}

func New(svc Service, logger *slog.Logger, m *metrics.Metrics, validator middleware.TokenValidator) *Handler {
	return &Handler{
		service:   svc,
		logger:    logger,
		metrics:   m,
		validator: validator,
	}
}

// Register mounts governance endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/governance", func(r chi.Router) {
		r.Get("/check-din/{din}", h.HandleCheckDIN)
		r.Get("/predict-disqualification", h.HandlePredictDisqualification)
		r.Post("/analyze-resolution", h.HandleAnalyzeResolution)

		r.Get("/directors", h.HandleListDirectors)
		r.Get("/directors/{din}", h.HandleGetDirector)
		r.Get("/resolutions", h.HandleListResolutions)
		r.Get("/resolutions/{id}", h.HandleGetResolution)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(h.validator, h.logger))
			r.Post("/directors", h.HandleRegisterDirector)
			r.Post("/directors/{din}/status", h.HandleChangeStatus)
			r.Post("/directors/{din}/disqualification-check", h.HandleDisqualificationCheck)
			r.Post("/resolutions", h.HandleFileResolution)
		})
	})
}

// HandleCheckDIN handles GET /governance/check-din/{din}.
func (h *Handler) HandleCheckDIN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	check, err := h.service.CheckDIN(ctx, chi.URLParam(r, "din"))
	if err != nil {
		h.writeFailure(ctx, w, "din check failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toDINCheckResponse(check))
}

// HandlePredictDisqualification handles
// GET /governance/predict-disqualification?years_defaulting.
func (h *Handler) HandlePredictDisqualification(w http.ResponseWriter, r *http.Request) {
	years, err := httputil.RequiredQueryInt(r, "years_defaulting")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if years < 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "years_defaulting must be non-negative"))
		return
	}
	risk := h.service.PredictDisqualification(r.Context(), years)
	httputil.WriteJSON(w, http.StatusOK, toRiskResponse(risk))
}

// HandleAnalyzeResolution handles POST /governance/analyze-resolution.
func (h *Handler) HandleAnalyzeResolution(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[AnalyzeResolutionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	report, err := h.service.AnalyzeResolution(ctx, req.AgendaText)
	if err != nil {
		h.writeFailure(ctx, w, "resolution analysis failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toReportResponse(report))
}

// HandleListDirectors handles GET /governance/directors.
func (h *Handler) HandleListDirectors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.service.ListDirectors(ctx)
	if err != nil {
		h.writeFailure(ctx, w, "failed to list directors", err)
		return
	}
	resp := DirectorListResponse{Directors: make([]DirectorResponse, 0, len(list))}
	for _, d := range list {
		resp.Directors = append(resp.Directors, toDirectorResponse(d))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleGetDirector handles GET /governance/directors/{din}.
func (h *Handler) HandleGetDirector(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	d, err := h.service.GetDirector(ctx, chi.URLParam(r, "din"))
	if err != nil {
		h.writeFailure(ctx, w, "failed to load director", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toDirectorResponse(d))
}

// HandleRegisterDirector handles POST /governance/directors.
func (h *Handler) HandleRegisterDirector(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RegisterDirectorRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	d, err := h.service.RegisterDirector(ctx, req.DIN, req.FullName)
	if err != nil {
		h.writeFailure(ctx, w, "failed to register director", err)
		return
	}

	h.logger.InfoContext(ctx, "director registered",
		"request_id", requestID,
		"din", d.DIN,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusCreated, toDirectorResponse(d))
}

// HandleChangeStatus handles POST /governance/directors/{din}/status.
func (h *Handler) HandleChangeStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ChangeStatusRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	d, err := h.service.ChangeDirectorStatus(ctx, chi.URLParam(r, "din"), req.Status, req.Reason)
	if err != nil {
		h.writeFailure(ctx, w, "failed to change director status", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toDirectorResponse(d))
}

// HandleDisqualificationCheck handles
// POST /governance/directors/{din}/disqualification-check.
func (h *Handler) HandleDisqualificationCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[DisqualificationCheckRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	result, err := h.service.AssessDisqualification(ctx, chi.URLParam(r, "din"), req.NonFilingYears)
	if err != nil {
		h.writeFailure(ctx, w, "disqualification check failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, DisqualificationCheckResponse{
		Director:      toDirectorResponse(result.Director),
		Risk:          toRiskResponse(result.Risk),
		StatusChanged: result.Changed,
	})
}

// HandleListResolutions handles GET /governance/resolutions.
func (h *Handler) HandleListResolutions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.service.ListResolutions(ctx)
	if err != nil {
		h.writeFailure(ctx, w, "failed to list resolutions", err)
		return
	}
	resp := ResolutionListResponse{Resolutions: make([]ResolutionResponse, 0, len(list))}
	for _, res := range list {
		resp.Resolutions = append(resp.Resolutions, toResolutionResponse(res))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleGetResolution handles GET /governance/resolutions/{id}.
func (h *Handler) HandleGetResolution(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "id must be a UUID"))
		return
	}
	res, err := h.service.GetResolution(ctx, id)
	if err != nil {
		h.writeFailure(ctx, w, "failed to load resolution", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toResolutionResponse(res))
}

// HandleFileResolution handles POST /governance/resolutions.
func (h *Handler) HandleFileResolution(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[FileResolutionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	res, err := h.service.FileResolution(ctx, req.Title, req.AgendaText)
	if err != nil {
		h.writeFailure(ctx, w, "failed to file resolution", err)
		return
	}

	h.logger.InfoContext(ctx, "resolution filed",
		"request_id", requestID,
		"resolution_id", res.ID,
		"risk_score", res.RiskScore,
	)
	httputil.WriteJSON(w, http.StatusCreated, toResolutionResponse(res))
}

// writeFailure logs at a level matching the error class and writes the
// envelope.
func (h *Handler) writeFailure(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	level := slog.LevelWarn
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		level = slog.LevelError
	}
	h.logger.Log(ctx, level, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	httputil.WriteError(w, err)
}
