// Package audit keeps an append-only trail of registry changes.
package audit

import (
	"context"
	"errors"
	"time"
)

// ErrQueueFull means the worker has fallen behind and the event was dropped.
var ErrQueueFull = errors.New("audit queue full")

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, e Event) error
	ListBySubject(ctx context.Context, subject string, limit int) ([]Event, error)
}

// Publisher hands events to a Worker through a bounded queue so request
// paths never wait on the trail.
type Publisher struct {
	store Store
	queue chan Event
}

// NewPublisher creates a publisher and the inbox its Worker drains.
func NewPublisher(store Store, buffer int) *Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &Publisher{store: store, queue: make(chan Event, buffer)}
}

// Emit enqueues e without blocking.
func (p *Publisher) Emit(_ context.Context, e Event) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	select {
	case p.queue <- e:
		return nil
	default:
		return ErrQueueFull
	}
}

// List returns the trail for subject, newest first.
func (p *Publisher) List(ctx context.Context, subject string, limit int) ([]Event, error) {
	return p.store.ListBySubject(ctx, subject, limit)
}

// Worker returns the consumer for this publisher's queue.
func (p *Publisher) Worker() *Worker {
	return NewWorker(p.store, p.queue)
}
