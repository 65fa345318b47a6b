package audit

import (
	"context"
	"sync"
)

// DefaultCapacity bounds the in-memory trail.
const DefaultCapacity = 10_000

// InMemoryStore keeps the most recent events, dropping the oldest once full.
type InMemoryStore struct {
	mu       sync.RWMutex
	events   []Event
	capacity int
}

func NewInMemoryStore(capacity int) *InMemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &InMemoryStore{capacity: capacity}
}

func (s *InMemoryStore) Append(_ context.Context, e Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == s.capacity {
		copy(s.events, s.events[1:])
		s.events = s.events[:len(s.events)-1]
	}
	s.events = append(s.events, e)
	return nil
}

// ListBySubject returns events for subject, newest first. An empty subject
// matches every event.
func (s *InMemoryStore) ListBySubject(_ context.Context, subject string, limit int) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Event{}
	for i := len(s.events) - 1; i >= 0; i-- {
		if subject != "" && s.events[i].Subject != subject {
			continue
		}
		out = append(out, s.events[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
