package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pratyaksh/internal/audit"
	"pratyaksh/internal/governance"
	"pratyaksh/internal/governance/models"
	"pratyaksh/internal/governance/store/director"
	"pratyaksh/internal/governance/store/resolution"
	dErrors "pratyaksh/pkg/domain-errors"
	"pratyaksh/pkg/requestcontext"
)

// lockstepStore releases FindByDIN only once every expected reader holds the
// same snapshot, so both writers race from one read.
type lockstepStore struct {
	*director.InMemory
	readers sync.WaitGroup
}

func (s *lockstepStore) FindByDIN(ctx context.Context, din governance.DIN) (*models.Director, error) {
	d, err := s.InMemory.FindByDIN(ctx, din)
	s.readers.Done()
	s.readers.Wait()
	return d, err
}

func TestConcurrentStatusChangesKeepDeactivatedTerminal(t *testing.T) {
	now := time.Date(2025, time.July, 1, 10, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(requestcontext.WithSubject(context.Background(), "cs-operator"), now)

	store := &lockstepStore{InMemory: director.NewInMemory()}
	d, err := models.NewDirector("12345678", "Asha Rao", now)
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, d))

	auditStore := audit.NewInMemoryStore(10)
	publisher := audit.NewPublisher(auditStore, 10)
	svc := New(store, resolution.NewInMemory(),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithAuditPublisher(publisher),
	)

	store.readers.Add(2)
	var deactivateErr, disqualifyErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, deactivateErr = svc.ChangeDirectorStatus(ctx, "12345678", "DEACTIVATED", "resigned")
	}()
	go func() {
		defer wg.Done()
		_, disqualifyErr = svc.AssessDisqualification(ctx, "12345678", 3)
	}()
	wg.Wait()

	failures := 0
	for _, err := range []error{deactivateErr, disqualifyErr} {
		if err != nil {
			failures++
			assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict), "got %v", err)
		}
	}
	require.Equal(t, 1, failures, "exactly one writer wins")

	store.readers.Add(1)
	final, err := store.FindByDIN(ctx, "12345678")
	require.NoError(t, err)
	if deactivateErr == nil {
		assert.Equal(t, governance.DINDeactivated, final.Status)
	} else {
		assert.Equal(t, governance.DINDisqualified, final.Status)
	}

	workerCtx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, publisher.Worker().Run(workerCtx))
	events, err := auditStore.ListBySubject(context.Background(), "cs-operator", 0)
	require.NoError(t, err)
	assert.Len(t, events, 1, "only the winning write is audited")
}
