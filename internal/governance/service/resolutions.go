package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"pratyaksh/internal/audit"
	"pratyaksh/internal/governance"
	"pratyaksh/internal/governance/models"
	dErrors "pratyaksh/pkg/domain-errors"
	"pratyaksh/pkg/platform/sentinel"
	"pratyaksh/pkg/requestcontext"
)

// AnalyzeResolution screens agenda text without storing it.
func (s *Service) AnalyzeResolution(_ context.Context, agenda string) (governance.ResolutionRiskReport, error) {
	if err := models.ValidateAgenda(agenda); err != nil {
		return governance.ResolutionRiskReport{}, err
	}
	report := s.analyzer.Analyze(agenda)
	s.metrics.IncrementCalculation("resolution", riskBand(report.RiskScore))
	return report, nil
}

// FileResolution screens and stores a board resolution.
func (s *Service) FileResolution(ctx context.Context, title, agenda string) (_ *models.BoardResolution, err error) {
	ctx, span := s.startSpan(ctx, "FileResolution")
	defer func() { endSpan(span, err) }()

	if err := models.ValidateAgenda(agenda); err != nil {
		return nil, err
	}
	report := s.analyzer.Analyze(agenda)
	r, err := models.NewBoardResolution(title, agenda, report, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("risk_score", r.RiskScore))

	if err := s.resolutions.Create(ctx, r); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store resolution")
	}

	s.logAudit(ctx, audit.ActionResolutionFiled, "resolution:"+r.ID.String(), "",
		"risk_score", r.RiskScore, "flags", r.RiskFlags,
	)
	s.metrics.IncrementCalculation("resolution", riskBand(r.RiskScore))
	return r, nil
}

// GetResolution loads one stored resolution.
func (s *Service) GetResolution(ctx context.Context, id uuid.UUID) (*models.BoardResolution, error) {
	r, err := s.resolutions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "resolution not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load resolution")
	}
	return r, nil
}

// ListResolutions returns stored resolutions, newest first.
func (s *Service) ListResolutions(ctx context.Context) ([]*models.BoardResolution, error) {
	list, err := s.resolutions.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list resolutions")
	}
	return list, nil
}

func riskBand(score int) string {
	switch {
	case score >= 50:
		return "high"
	case score > 0:
		return "flagged"
	default:
		return "clean"
	}
}
