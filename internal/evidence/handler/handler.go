package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pratyaksh/internal/evidence/models"
	"pratyaksh/internal/platform/middleware"
	dErrors "pratyaksh/pkg/domain-errors"
	"pratyaksh/pkg/platform/httputil"
	"pratyaksh/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

type Service interface {
	Record(ctx context.Context, c models.Capture) (*models.Log, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Log, error)
	ListMine(ctx context.Context, limit int) ([]*models.Log, error)
}

// Handler serves the evidence log. Every route requires a bearer token.
type Handler struct {
	service   Service
	logger    *slog.Logger
	validator middleware.TokenValidator
}

func New(svc Service, logger *slog.Logger, validator middleware.TokenValidator) *Handler {
	return &Handler{service: svc, logger: logger, validator: validator}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/evidence", func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.validator, h.logger))
		r.Post("/", h.HandleRecord)
		r.Get("/", h.HandleList)
		r.Get("/{id}", h.HandleGet)
	})
}

type RecordRequest struct {
	EvidenceType string   `json:"evidence_type"`
	Description  string   `json:"description"`
	FileURL      string   `json:"file_url"`
	FileHash     string   `json:"file_hash"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

type EvidenceResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	EvidenceType string    `json:"evidence_type"`
	Description  string    `json:"description,omitempty"`
	FileURL      string    `json:"file_url,omitempty"`
	FileHash     string    `json:"file_hash"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	CapturedAt   time.Time `json:"captured_at"`
}

type EvidenceListResponse struct {
	Evidence []EvidenceResponse `json:"evidence"`
}

// HandleRecord handles POST /evidence.
func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RecordRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	l, err := h.service.Record(ctx, models.Capture{
		EvidenceType: req.EvidenceType,
		Description:  req.Description,
		FileURL:      req.FileURL,
		FileHash:     req.FileHash,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	})
	if err != nil {
		h.fail(ctx, w, "failed to record evidence", err)
		return
	}

	h.logger.InfoContext(ctx, "evidence recorded",
		"request_id", requestID,
		"evidence_id", l.ID,
	)
	httputil.WriteJSON(w, http.StatusCreated, toResponse(l))
}

// HandleList handles GET /evidence[?limit].
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, err := httputil.QueryInt(r, "limit", 0)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if limit < 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "limit must be non-negative"))
		return
	}
	list, err := h.service.ListMine(ctx, limit)
	if err != nil {
		h.fail(ctx, w, "failed to list evidence", err)
		return
	}
	resp := EvidenceListResponse{Evidence: make([]EvidenceResponse, 0, len(list))}
	for _, l := range list {
		resp.Evidence = append(resp.Evidence, toResponse(l))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /evidence/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "id must be a UUID"))
		return
	}
	l, err := h.service.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "failed to load evidence", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toResponse(l))
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, msg, "request_id", requestcontext.RequestID(ctx), "error", err)
	}
	httputil.WriteError(w, err)
}

func toResponse(l *models.Log) EvidenceResponse {
	return EvidenceResponse{
		ID:           l.ID.String(),
		UserID:       l.UserID,
		EvidenceType: l.EvidenceType,
		Description:  l.Description,
		FileURL:      l.FileURL,
		FileHash:     l.FileHash,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		CapturedAt:   l.CapturedAt,
	}
}
