package tui

import (
	"context"
)

// Loop runs callbacks one at a time on a single goroutine, like the
// browser's event loop.
type Loop struct {
	events chan func()
	done   chan struct{}

	// OnIdle, if set, runs after every callback.
	OnIdle func()
}

func NewLoop() *Loop {
	return &Loop{
		events: make(chan func(), 64),
		done:   make(chan struct{}),
	}
}

// Post queues fn. It is safe to call from any goroutine; after Run returns
// callbacks are dropped.
func (l *Loop) Post(fn func()) {
	select {
	case l.events <- fn:
	case <-l.done:
	}
}

// Run executes posted callbacks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.events:
			fn()
			if l.OnIdle != nil {
				l.OnIdle()
			}
		}
	}
}
