package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"pratyaksh/internal/audit"
	"pratyaksh/internal/governance"
	"pratyaksh/internal/governance/models"
	dErrors "pratyaksh/pkg/domain-errors"
	"pratyaksh/pkg/platform/sentinel"
	"pratyaksh/pkg/requestcontext"
)

// DINCheck is the outcome of a DIN lookup: the format is always valid, the
// registry fields are set only when the DIN is registered here.
type DINCheck struct {
	DIN        governance.DIN
	Registered bool
	Status     governance.DINStatus
}

// DisqualificationAssessment pairs a director with their tier and whether
// the assessment changed their status.
type DisqualificationAssessment struct {
	Director *models.Director
	Risk     governance.DisqualificationRisk
	Changed  bool
}

// CheckDIN validates the format and reports the registry status if known.
func (s *Service) CheckDIN(ctx context.Context, raw string) (*DINCheck, error) {
	din, err := governance.ParseDIN(raw)
	if err != nil {
		return nil, err
	}
	d, err := s.directors.FindByDIN(ctx, din)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return &DINCheck{DIN: din}, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up director")
	}
	return &DINCheck{DIN: din, Registered: true, Status: d.Status}, nil
}

// PredictDisqualification applies the fixed statutory tiers.
func (s *Service) PredictDisqualification(_ context.Context, nonFilingYears int) governance.DisqualificationRisk {
	risk := governance.PredictDisqualification(nonFilingYears)
	s.metrics.IncrementCalculation("governance", string(risk.Status))
	return risk
}

// RegisterDirector adds an APPROVED director. A DIN can be registered once.
func (s *Service) RegisterDirector(ctx context.Context, rawDIN, fullName string) (_ *models.Director, err error) {
	ctx, span := s.startSpan(ctx, "RegisterDirector")
	defer func() { endSpan(span, err) }()

	din, err := governance.ParseDIN(rawDIN)
	if err != nil {
		return nil, err
	}
	d, err := models.NewDirector(din, fullName, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.directors.Create(ctx, d); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, dErrors.New(dErrors.CodeConflict, fmt.Sprintf("director with DIN %s is already registered", din))
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to register director")
	}

	s.logAudit(ctx, audit.ActionDirectorRegistered, "director:"+din.String(), "", "director_id", d.ID)
	s.metrics.IncrementDirectorEvent("registered")
	return d, nil
}

// GetDirector loads one director by DIN.
func (s *Service) GetDirector(ctx context.Context, rawDIN string) (*models.Director, error) {
	din, err := governance.ParseDIN(rawDIN)
	if err != nil {
		return nil, err
	}
	return s.findDirector(ctx, din)
}

// ListDirectors returns every registered director.
func (s *Service) ListDirectors(ctx context.Context) ([]*models.Director, error) {
	list, err := s.directors.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list directors")
	}
	return list, nil
}

// ChangeDirectorStatus applies a manual status change.
func (s *Service) ChangeDirectorStatus(ctx context.Context, rawDIN, rawStatus, reason string) (_ *models.Director, err error) {
	ctx, span := s.startSpan(ctx, "ChangeDirectorStatus", attribute.String("status", rawStatus))
	defer func() { endSpan(span, err) }()

	din, err := governance.ParseDIN(rawDIN)
	if err != nil {
		return nil, err
	}
	next, err := governance.ParseDINStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	d, err := s.findDirector(ctx, din)
	if err != nil {
		return nil, err
	}
	previous := d.Status
	if err := d.ChangeStatus(next, reason, requestcontext.Now(ctx)); err != nil {
		return nil, err
	}
	if err := s.save(ctx, d, previous); err != nil {
		return nil, err
	}

	s.logAudit(ctx, audit.ActionDirectorStatusChanged, "director:"+din.String(),
		fmt.Sprintf("%s -> %s", previous, next),
		"from", previous, "to", next,
	)
	s.metrics.IncrementDirectorEvent("status_changed")
	return d, nil
}

// AssessDisqualification tiers a registered director. A CRITICAL result
// disqualifies an APPROVED director with the statutory message as reason.
func (s *Service) AssessDisqualification(ctx context.Context, rawDIN string, nonFilingYears int) (_ *DisqualificationAssessment, err error) {
	ctx, span := s.startSpan(ctx, "AssessDisqualification", attribute.Int("non_filing_years", nonFilingYears))
	defer func() { endSpan(span, err) }()

	din, err := governance.ParseDIN(rawDIN)
	if err != nil {
		return nil, err
	}
	d, err := s.findDirector(ctx, din)
	if err != nil {
		return nil, err
	}

	risk := s.PredictDisqualification(ctx, nonFilingYears)
	result := &DisqualificationAssessment{Director: d, Risk: risk}
	if risk.Status != governance.DisqualificationCritical || d.Status != governance.DINApproved {
		return result, nil
	}

	if err := d.ChangeStatus(governance.DINDisqualified, risk.Message, requestcontext.Now(ctx)); err != nil {
		return nil, err
	}
	if err := s.save(ctx, d, governance.DINApproved); err != nil {
		return nil, err
	}
	result.Changed = true

	s.logAudit(ctx, audit.ActionDirectorDisqualified, "director:"+din.String(), risk.Message,
		"non_filing_years", nonFilingYears,
	)
	s.metrics.IncrementDirectorEvent("disqualified")
	return result, nil
}

func (s *Service) findDirector(ctx context.Context, din governance.DIN) (*models.Director, error) {
	d, err := s.directors.FindByDIN(ctx, din)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("director with DIN %s not found", din))
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load director")
	}
	return d, nil
}

// save persists d if its stored status is still from. A concurrent change in
// between is a conflict and nothing is written.
func (s *Service) save(ctx context.Context, d *models.Director, from governance.DINStatus) error {
	if err := s.directors.Update(ctx, d, from); err != nil {
		switch {
		case errors.Is(err, sentinel.ErrNotFound):
			return dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("director with DIN %s not found", d.DIN))
		case errors.Is(err, sentinel.ErrConflict):
			return dErrors.New(dErrors.CodeConflict, fmt.Sprintf("director with DIN %s was changed by another request; reload and retry", d.DIN))
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update director")
	}
	return nil
}
