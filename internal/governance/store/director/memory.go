package director

import (
	"context"
	"slices"
	"strings"
	"sync"

	"pratyaksh/internal/governance"
	"pratyaksh/internal/governance/models"
	"pratyaksh/pkg/platform/sentinel"
)

// InMemory is a process-local director registry. Records are copied on the
// way in and out so callers never share state with the store.
type InMemory struct {
	mu        sync.RWMutex
	directors map[governance.DIN]models.Director
}

func NewInMemory() *InMemory {
	return &InMemory{directors: make(map[governance.DIN]models.Director)}
}

func (s *InMemory) Create(_ context.Context, d *models.Director) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.directors[d.DIN]; exists {
		return sentinel.ErrAlreadyUsed
	}
	s.directors[d.DIN] = clone(d)
	return nil
}

func (s *InMemory) FindByDIN(_ context.Context, din governance.DIN) (*models.Director, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.directors[din]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := clone(&d)
	return &out, nil
}

// List returns every director ordered by creation time, then DIN.
func (s *InMemory) List(_ context.Context) ([]*models.Director, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Director, 0, len(s.directors))
	for _, d := range s.directors {
		c := clone(&d)
		out = append(out, &c)
	}
	slices.SortFunc(out, func(a, b *models.Director) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(string(a.DIN), string(b.DIN))
	})
	return out, nil
}

// Update replaces the record while its stored status is still from.
func (s *InMemory) Update(_ context.Context, d *models.Director, from governance.DINStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.directors[d.DIN]
	if !ok {
		return sentinel.ErrNotFound
	}
	if current.Status != from {
		return sentinel.ErrConflict
	}
	s.directors[d.DIN] = clone(d)
	return nil
}

func clone(d *models.Director) models.Director {
	out := *d
	if d.DisqualificationDate != nil {
		day := *d.DisqualificationDate
		out.DisqualificationDate = &day
	}
	return out
}
