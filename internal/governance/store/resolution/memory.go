package resolution

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"pratyaksh/internal/governance/models"
	"pratyaksh/pkg/platform/sentinel"
)

// InMemory keeps board resolutions in process memory.
type InMemory struct {
	mu          sync.RWMutex
	resolutions map[uuid.UUID]models.BoardResolution
}

func NewInMemory() *InMemory {
	return &InMemory{resolutions: make(map[uuid.UUID]models.BoardResolution)}
}

func (s *InMemory) Create(_ context.Context, r *models.BoardResolution) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.resolutions[r.ID]; exists {
		return sentinel.ErrAlreadyUsed
	}
	s.resolutions[r.ID] = clone(r)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id uuid.UUID) (*models.BoardResolution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.resolutions[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := clone(&r)
	return &out, nil
}

// List returns resolutions newest first.
func (s *InMemory) List(_ context.Context) ([]*models.BoardResolution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.BoardResolution, 0, len(s.resolutions))
	for _, r := range s.resolutions {
		c := clone(&r)
		out = append(out, &c)
	}
	slices.SortFunc(out, func(a, b *models.BoardResolution) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func clone(r *models.BoardResolution) models.BoardResolution {
	out := *r
	out.RiskFlags = append([]string{}, r.RiskFlags...)
	return out
}
