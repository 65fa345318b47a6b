package audit

import "context"

// Worker drains queued events into the store until ctx is done, then
// flushes what is already queued.
type Worker struct {
	store Store
	inbox <-chan Event
}

func NewWorker(store Store, inbox <-chan Event) *Worker {
	return &Worker{store: store, inbox: inbox}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return nil
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				return err
			}
		}
	}
}

func (w *Worker) drain() {
	for {
		select {
		case event := <-w.inbox:
			_ = w.store.Append(context.Background(), event)
		default:
			return
		}
	}
}
