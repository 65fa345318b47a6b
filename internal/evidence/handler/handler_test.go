package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"pratyaksh/internal/evidence/handler/mocks"
	"pratyaksh/internal/evidence/models"
	dErrors "pratyaksh/pkg/domain-errors"
	"pratyaksh/pkg/requestcontext"
	"pratyaksh/pkg/testutil"
)

type tokenStub struct{}

func (tokenStub) Subject(token string) (string, error) {
	if token != "alice-token" {
		return "", errors.New("bad token")
	}
	return "alice", nil
}

type EvidenceHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
	now     time.Time
}

func TestEvidenceHandlerSuite(t *testing.T) {
	suite.Run(t, new(EvidenceHandlerSuite))
}

func (s *EvidenceHandlerSuite) SetupTest() {
	s.service = mocks.NewMockService(gomock.NewController(s.T()))
	s.now = time.Date(2025, time.August, 14, 6, 45, 0, 0, time.UTC)
	h := New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil)), tokenStub{})
	s.router = chi.NewRouter()
	h.Register(s.router)
}

func (s *EvidenceHandlerSuite) sample() *models.Log {
	lat, lng := 19.07, 72.87
	return &models.Log{
		ID:           uuid.New(),
		UserID:       "alice",
		EvidenceType: "PHOTO",
		FileHash:     strings.Repeat("c3", 32),
		Latitude:     &lat,
		Longitude:    &lng,
		CapturedAt:   s.now,
	}
}

func (s *EvidenceHandlerSuite) TestRequiresToken() {
	for _, req := range []*http.Request{
		testutil.NewJSONRequest(s.T(), http.MethodPost, "/evidence", RecordRequest{EvidenceType: "PHOTO"}),
		testutil.NewRequest(s.T(), http.MethodGet, "/evidence"),
		testutil.WithBearer(testutil.NewRequest(s.T(), http.MethodGet, "/evidence/"+uuid.NewString()), "stolen"),
	} {
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, "unauthorized")
	}
}

func (s *EvidenceHandlerSuite) TestRecord() {
	s.Run("created", func() {
		l := s.sample()
		s.service.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, c models.Capture) (*models.Log, error) {
				s.Equal("alice", requestcontext.Subject(ctx))
				s.Equal("PHOTO", c.EvidenceType)
				s.Require().NotNil(c.Latitude)
				s.Equal(19.07, *c.Latitude)
				return l, nil
			})

		lat, lng := 19.07, 72.87
		req := testutil.WithBearer(testutil.NewJSONRequest(s.T(), http.MethodPost, "/evidence", RecordRequest{
			EvidenceType: "PHOTO",
			FileHash:     l.FileHash,
			Latitude:     &lat,
			Longitude:    &lng,
		}), "alice-token")
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusCreated)
		resp := testutil.UnmarshalResponse[EvidenceResponse](s.T(), rr)
		s.Equal(l.ID.String(), resp.ID)
		s.Equal("alice", resp.UserID)
		s.True(resp.CapturedAt.Equal(s.now))
	})

	s.Run("validation error is passed through", func() {
		s.service.EXPECT().Record(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeValidation, "file_hash is required"))

		req := testutil.WithBearer(testutil.NewJSONRequest(s.T(), http.MethodPost, "/evidence", RecordRequest{EvidenceType: "PHOTO"}), "alice-token")
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})

	s.Run("malformed body", func() {
		req := testutil.WithBearer(testutil.NewRequest(s.T(), http.MethodPost, "/evidence"), "alice-token")
		req.Body = io.NopCloser(strings.NewReader("{"))
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})
}

func (s *EvidenceHandlerSuite) TestList() {
	s.Run("lists caller's logs", func() {
		s.service.EXPECT().ListMine(gomock.Any(), 10).DoAndReturn(
			func(ctx context.Context, _ int) ([]*models.Log, error) {
				s.Equal("alice", requestcontext.Subject(ctx))
				return []*models.Log{s.sample(), s.sample()}, nil
			})

		req := testutil.WithBearer(testutil.NewRequest(s.T(), http.MethodGet, "/evidence?limit=10"), "alice-token")
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[EvidenceListResponse](s.T(), rr)
		s.Len(resp.Evidence, 2)
	})

	s.Run("negative limit", func() {
		req := testutil.WithBearer(testutil.NewRequest(s.T(), http.MethodGet, "/evidence?limit=-1"), "alice-token")
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})
}

func (s *EvidenceHandlerSuite) TestGet() {
	s.Run("subject reaches the service", func() {
		l := s.sample()
		s.service.EXPECT().Get(gomock.Any(), l.ID).DoAndReturn(
			func(ctx context.Context, _ uuid.UUID) (*models.Log, error) {
				s.Equal("alice", requestcontext.Subject(ctx))
				return l, nil
			})

		req := testutil.WithBearer(testutil.NewRequest(s.T(), http.MethodGet, "/evidence/"+l.ID.String()), "alice-token")
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	s.Run("malformed id", func() {
		req := testutil.WithBearer(testutil.NewRequest(s.T(), http.MethodGet, "/evidence/xyz"), "alice-token")
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})

	s.Run("not found", func() {
		id := uuid.New()
		s.service.EXPECT().Get(gomock.Any(), id).Return(nil, dErrors.New(dErrors.CodeNotFound, "evidence not found"))

		req := testutil.WithBearer(testutil.NewRequest(s.T(), http.MethodGet, "/evidence/"+id.String()), "alice-token")
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
	})
}
