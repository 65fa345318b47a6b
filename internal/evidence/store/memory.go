package store

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"pratyaksh/internal/evidence/models"
	"pratyaksh/pkg/platform/sentinel"
)

// InMemory keeps evidence logs in process memory.
type InMemory struct {
	mu   sync.RWMutex
	logs map[uuid.UUID]models.Log
}

func NewInMemory() *InMemory {
	return &InMemory{logs: make(map[uuid.UUID]models.Log)}
}

func (s *InMemory) Create(_ context.Context, l *models.Log) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.logs[l.ID]; exists {
		return sentinel.ErrAlreadyUsed
	}
	s.logs[l.ID] = clone(l)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id uuid.UUID) (*models.Log, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.logs[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := clone(&l)
	return &out, nil
}

// ListByUser returns up to limit logs of userID, newest first. A limit of
// zero or less means no limit.
func (s *InMemory) ListByUser(_ context.Context, userID string, limit int) ([]*models.Log, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*models.Log{}
	for _, l := range s.logs {
		if l.UserID != userID {
			continue
		}
		c := clone(&l)
		out = append(out, &c)
	}
	slices.SortFunc(out, func(a, b *models.Log) int {
		return b.CapturedAt.Compare(a.CapturedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func clone(l *models.Log) models.Log {
	out := *l
	if l.Latitude != nil {
		lat := *l.Latitude
		out.Latitude = &lat
	}
	if l.Longitude != nil {
		long := *l.Longitude
		out.Longitude = &long
	}
	return out
}
