package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pratyaksh/internal/audit"
	"pratyaksh/internal/governance"
	"pratyaksh/internal/governance/models"
	"pratyaksh/internal/platform/metrics"
	"pratyaksh/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks DirectorStore,ResolutionStore,AuditPublisher

type DirectorStore interface {
	Create(ctx context.Context, d *models.Director) error
	FindByDIN(ctx context.Context, din governance.DIN) (*models.Director, error)
	List(ctx context.Context) ([]*models.Director, error)
	// Update writes d only while the stored status still equals from.
	Update(ctx context.Context, d *models.Director, from governance.DINStatus) error
}

type ResolutionStore interface {
	Create(ctx context.Context, r *models.BoardResolution) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.BoardResolution, error)
	List(ctx context.Context) ([]*models.BoardResolution, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, e audit.Event) error
}

// Service runs the director registry and resolution screening.
type Service struct {
	directors   DirectorStore
	resolutions ResolutionStore
	analyzer    *governance.ResolutionAnalyzer
	logger      *slog.Logger
	metrics     *metrics.Metrics
	audit       AuditPublisher
	tracer      trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) {
		s.audit = p
	}
}

// WithResolutionRules replaces the default Sec 185/188 rule table.
func WithResolutionRules(rules []governance.KeywordRule) Option {
	return func(s *Service) {
		s.analyzer = governance.NewResolutionAnalyzer(rules)
	}
}

func New(directors DirectorStore, resolutions ResolutionStore, opts ...Option) *Service {
	s := &Service{
		directors:   directors,
		resolutions: resolutions,
		analyzer:    governance.NewResolutionAnalyzer(governance.DefaultResolutionRules()),
		tracer:      otel.Tracer("pratyaksh/governance"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "governance."+name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *Service) logAudit(ctx context.Context, action, resource, detail string, attributes ...any) {
	subject := requestcontext.Subject(ctx)
	requestID := requestcontext.RequestID(ctx)
	if s.logger != nil {
		args := append(attributes,
			"event", action,
			"resource", resource,
			"subject", subject,
			"request_id", requestID,
			"log_type", "audit",
		)
		s.logger.InfoContext(ctx, action, args...)
	}
	if s.audit == nil {
		return
	}
	err := s.audit.Emit(ctx, audit.Event{
		Timestamp: requestcontext.Now(ctx),
		Subject:   subject,
		Action:    action,
		Resource:  resource,
		RequestID: requestID,
		Detail:    detail,
	})
	if err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "audit event dropped", "event", action, "error", err)
	}
}
