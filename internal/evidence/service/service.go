package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pratyaksh/internal/audit"
	"pratyaksh/internal/evidence/models"
	dErrors "pratyaksh/pkg/domain-errors"
	"pratyaksh/pkg/platform/sentinel"
	"pratyaksh/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,AuditPublisher

// DefaultListLimit bounds ListMine when the caller gives no limit.
const DefaultListLimit = 100

type Store interface {
	Create(ctx context.Context, l *models.Log) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Log, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.Log, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, e audit.Event) error
}

// Service records evidence for the authenticated operator. Operators only
// see their own logs.
type Service struct {
	store  Store
	logger *slog.Logger
	audit  AuditPublisher
	tracer trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) {
		s.audit = p
	}
}

func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		tracer: otel.Tracer("pratyaksh/evidence"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record validates c and stores it against the caller, captured at request
// time.
func (s *Service) Record(ctx context.Context, c models.Capture) (_ *models.Log, err error) {
	ctx, span := s.tracer.Start(ctx, "evidence.Record")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	l, err := models.NewLog(requestcontext.Subject(ctx), c, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("evidence_type", l.EvidenceType))

	if err := s.store.Create(ctx, l); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, dErrors.New(dErrors.CodeConflict, "evidence log already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store evidence")
	}

	s.emit(ctx, l)
	return l, nil
}

// Get loads one of the caller's logs. Logs of other users are reported as
// not found.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Log, error) {
	subject := requestcontext.Subject(ctx)
	if subject == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "evidence requires an authenticated user")
	}
	l, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "evidence not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load evidence")
	}
	if l.UserID != subject {
		return nil, dErrors.New(dErrors.CodeNotFound, "evidence not found")
	}
	return l, nil
}

// ListMine returns the caller's logs newest first. A non-positive limit means
// DefaultListLimit.
func (s *Service) ListMine(ctx context.Context, limit int) ([]*models.Log, error) {
	subject := requestcontext.Subject(ctx)
	if subject == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "evidence requires an authenticated user")
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	list, err := s.store.ListByUser(ctx, subject, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list evidence")
	}
	return list, nil
}

func (s *Service) emit(ctx context.Context, l *models.Log) {
	if s.logger != nil {
		s.logger.InfoContext(ctx, audit.ActionEvidenceRecorded,
			"event", audit.ActionEvidenceRecorded,
			"evidence_id", l.ID,
			"evidence_type", l.EvidenceType,
			"subject", l.UserID,
			"request_id", requestcontext.RequestID(ctx),
			"log_type", "audit",
		)
	}
	if s.audit == nil {
		return
	}
	err := s.audit.Emit(ctx, audit.Event{
		Timestamp: l.CapturedAt,
		Subject:   l.UserID,
		Action:    audit.ActionEvidenceRecorded,
		Resource:  "evidence:" + l.ID.String(),
		RequestID: requestcontext.RequestID(ctx),
		Detail:    l.EvidenceType,
	})
	if err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "audit event dropped", "event", audit.ActionEvidenceRecorded, "error", err)
	}
}
