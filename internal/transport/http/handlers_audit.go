package httptransport

import (
	"log/slog"
	"net/http"

	"pratyaksh/internal/audit"
	dErrors "pratyaksh/pkg/domain-errors"
	"pratyaksh/pkg/platform/httputil"
	"pratyaksh/pkg/requestcontext"
)

const defaultAuditLimit = 50

type auditHandler struct {
	reader AuditReader
	logger *slog.Logger
}

type auditEventsResponse struct {
	Events []audit.Event `json:"events"`
}

// list handles GET /audit/events[?limit] for the authenticated subject.
func (h *auditHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, err := httputil.QueryInt(r, "limit", defaultAuditLimit)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if limit <= 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "limit must be positive"))
		return
	}

	events, err := h.reader.List(ctx, requestcontext.Subject(ctx), limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read audit trail",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read audit trail"))
		return
	}
	if events == nil {
		events = []audit.Event{}
	}
	httputil.WriteJSON(w, http.StatusOK, auditEventsResponse{Events: events})
}
