package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"pratyaksh/internal/audit"
	"pratyaksh/internal/governance"
	"pratyaksh/internal/governance/models"
	"pratyaksh/internal/governance/service/mocks"
	"pratyaksh/internal/platform/metrics"
	dErrors "pratyaksh/pkg/domain-errors"
	"pratyaksh/pkg/platform/sentinel"
	"pratyaksh/pkg/requestcontext"
)

type GovernanceServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	directors   *mocks.MockDirectorStore
	resolutions *mocks.MockResolutionStore
	audit       *mocks.MockAuditPublisher
	service     *Service
	ctx         context.Context
	now         time.Time
}

func TestGovernanceServiceSuite(t *testing.T) {
	suite.Run(t, new(GovernanceServiceSuite))
}

func (s *GovernanceServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.directors = mocks.NewMockDirectorStore(s.ctrl)
	s.resolutions = mocks.NewMockResolutionStore(s.ctrl)
	s.audit = mocks.NewMockAuditPublisher(s.ctrl)
	s.service = New(s.directors, s.resolutions,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(metrics.New()),
		WithAuditPublisher(s.audit),
	)
	s.now = time.Date(2025, time.July, 1, 10, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithSubject(requestcontext.WithTime(context.Background(), s.now), "cs-operator")
}

func (s *GovernanceServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *GovernanceServiceSuite) approved(din string) *models.Director {
	d, err := models.NewDirector(governance.DIN(din), "Asha Rao", s.now.Add(-24*time.Hour))
	s.Require().NoError(err)
	return d
}

func (s *GovernanceServiceSuite) TestRegisterDirector() {
	s.Run("creates approved director and audits", func() {
		s.directors.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d *models.Director) error {
				s.Equal(governance.DIN("12345678"), d.DIN)
				s.Equal(governance.DINApproved, d.Status)
				s.Equal(s.now, d.CreatedAt)
				return nil
			})
		s.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e audit.Event) error {
				s.Equal(audit.ActionDirectorRegistered, e.Action)
				s.Equal("cs-operator", e.Subject)
				s.Equal("director:12345678", e.Resource)
				return nil
			})

		d, err := s.service.RegisterDirector(s.ctx, "12345678", "Asha Rao")
		s.Require().NoError(err)
		s.Equal("Asha Rao", d.FullName)
	})

	s.Run("invalid DIN never reaches the store", func() {
		_, err := s.service.RegisterDirector(s.ctx, "1234567", "Asha Rao")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("duplicate DIN is a conflict", func() {
		s.directors.EXPECT().Create(gomock.Any(), gomock.Any()).Return(sentinel.ErrAlreadyUsed)

		_, err := s.service.RegisterDirector(s.ctx, "12345678", "Asha Rao")
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("store failure is internal", func() {
		s.directors.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := s.service.RegisterDirector(s.ctx, "12345678", "Asha Rao")
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("dropped audit event does not fail the call", func() {
		s.directors.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(audit.ErrQueueFull)

		_, err := s.service.RegisterDirector(s.ctx, "87654321", "Vikram Shah")
		s.NoError(err)
	})
}

func (s *GovernanceServiceSuite) TestCheckDIN() {
	s.Run("unknown DIN is format-valid but unregistered", func() {
		s.directors.EXPECT().FindByDIN(gomock.Any(), governance.DIN("12345678")).Return(nil, sentinel.ErrNotFound)

		check, err := s.service.CheckDIN(s.ctx, "12345678")
		s.Require().NoError(err)
		s.False(check.Registered)
	})

	s.Run("registered DIN reports status", func() {
		d := s.approved("12345678")
		d.Status = governance.DINDisqualified
		s.directors.EXPECT().FindByDIN(gomock.Any(), governance.DIN("12345678")).Return(d, nil)

		check, err := s.service.CheckDIN(s.ctx, "12345678")
		s.Require().NoError(err)
		s.True(check.Registered)
		s.Equal(governance.DINDisqualified, check.Status)
	})

	s.Run("bad format", func() {
		_, err := s.service.CheckDIN(s.ctx, "ABCDEFGH")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *GovernanceServiceSuite) TestChangeDirectorStatus() {
	s.Run("disqualifies with reason", func() {
		d := s.approved("12345678")
		s.directors.EXPECT().FindByDIN(gomock.Any(), d.DIN).Return(d, nil)
		s.directors.EXPECT().Update(gomock.Any(), d, governance.DINApproved).Return(nil)
		s.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

		got, err := s.service.ChangeDirectorStatus(s.ctx, "12345678", "disqualified", "ROC order")
		s.Require().NoError(err)
		s.Equal(governance.DINDisqualified, got.Status)
		s.Equal("ROC order", got.DisqualificationReason)
	})

	s.Run("deactivated director cannot change", func() {
		d := s.approved("12345678")
		d.Status = governance.DINDeactivated
		s.directors.EXPECT().FindByDIN(gomock.Any(), d.DIN).Return(d, nil)

		_, err := s.service.ChangeDirectorStatus(s.ctx, "12345678", "APPROVED", "")
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("unknown status", func() {
		_, err := s.service.ChangeDirectorStatus(s.ctx, "12345678", "SUSPENDED", "")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unknown director", func() {
		s.directors.EXPECT().FindByDIN(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.ChangeDirectorStatus(s.ctx, "12345678", "DEACTIVATED", "")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("status changed since read is a conflict and not audited", func() {
		d := s.approved("12345678")
		s.directors.EXPECT().FindByDIN(gomock.Any(), d.DIN).Return(d, nil)
		s.directors.EXPECT().Update(gomock.Any(), d, governance.DINApproved).Return(sentinel.ErrConflict)

		_, err := s.service.ChangeDirectorStatus(s.ctx, "12345678", "DISQUALIFIED", "ROC order")
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})
}

func (s *GovernanceServiceSuite) TestAssessDisqualification() {
	s.Run("critical disqualifies an approved director", func() {
		d := s.approved("12345678")
		s.directors.EXPECT().FindByDIN(gomock.Any(), d.DIN).Return(d, nil)
		s.directors.EXPECT().Update(gomock.Any(), d, governance.DINApproved).Return(nil)
		s.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e audit.Event) error {
				s.Equal(audit.ActionDirectorDisqualified, e.Action)
				return nil
			})

		got, err := s.service.AssessDisqualification(s.ctx, "12345678", 3)
		s.Require().NoError(err)
		s.True(got.Changed)
		s.Equal(governance.DisqualificationCritical, got.Risk.Status)
		s.Equal(governance.DINDisqualified, got.Director.Status)
		s.Equal(got.Risk.Message, got.Director.DisqualificationReason)
		s.Require().NotNil(got.Director.DisqualificationDate)
	})

	s.Run("high risk leaves status alone", func() {
		d := s.approved("12345678")
		s.directors.EXPECT().FindByDIN(gomock.Any(), d.DIN).Return(d, nil)

		got, err := s.service.AssessDisqualification(s.ctx, "12345678", 2)
		s.Require().NoError(err)
		s.False(got.Changed)
		s.Equal(75, got.Risk.RiskScore)
		s.Equal(governance.DINApproved, got.Director.Status)
	})

	s.Run("already disqualified is not rewritten", func() {
		d := s.approved("12345678")
		s.Require().NoError(d.ChangeStatus(governance.DINDisqualified, "earlier order", s.now))
		s.directors.EXPECT().FindByDIN(gomock.Any(), d.DIN).Return(d, nil)

		got, err := s.service.AssessDisqualification(s.ctx, "12345678", 5)
		s.Require().NoError(err)
		s.False(got.Changed)
		s.Equal("earlier order", got.Director.DisqualificationReason)
	})

	s.Run("update failure surfaces", func() {
		d := s.approved("12345678")
		s.directors.EXPECT().FindByDIN(gomock.Any(), d.DIN).Return(d, nil)
		s.directors.EXPECT().Update(gomock.Any(), d, governance.DINApproved).Return(errors.New("db down"))

		_, err := s.service.AssessDisqualification(s.ctx, "12345678", 3)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func (s *GovernanceServiceSuite) TestResolutions() {
	s.Run("files screened resolution", func() {
		s.resolutions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r *models.BoardResolution) error {
				s.Equal(80, r.RiskScore)
				s.Equal([]string{"SEC_185_VIOLATION", "RELATED_PARTY"}, r.RiskFlags)
				return nil
			})
		s.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

		r, err := s.service.FileResolution(s.ctx, "Item 3", "loan to director and relative contract with subsidiary")
		s.Require().NoError(err)
		s.Equal(s.now, r.CreatedAt)
	})

	s.Run("empty agenda is rejected", func() {
		_, err := s.service.FileResolution(s.ctx, "Item 3", "  ")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("analyze does not persist", func() {
		report, err := s.service.AnalyzeResolution(s.ctx, "Contract with subsidiary")
		s.Require().NoError(err)
		s.Equal(30, report.RiskScore)
	})

	s.Run("unknown resolution", func() {
		s.resolutions.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.GetResolution(s.ctx, uuid.New())
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("custom rules", func() {
		svc := New(s.directors, s.resolutions, WithResolutionRules([]governance.KeywordRule{
			{Code: "GUARANTEE", Keyword: "guarantee", AnyOf: []string{"director"}, Weight: 40},
		}))
		report, err := svc.AnalyzeResolution(s.ctx, "Guarantee for a director loan")
		s.Require().NoError(err)
		s.Equal([]string{"GUARANTEE"}, report.FlagCodes())
	})
}
