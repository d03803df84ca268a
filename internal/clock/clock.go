// Package clock schedules delayed and repeating callbacks that can be
// cancelled, and delivers them on the owner's event loop.
package clock

import (
	"sync"
	"time"
)

// Task is a handle to a scheduled callback.
type Task interface {
	// Stop cancels the task. It returns false if the task had already run (for
	// one-shot tasks) or had already been stopped.
	Stop() bool
}

// Scheduler creates tasks.
type Scheduler interface {
	// AfterFunc runs fn once after d.
	AfterFunc(d time.Duration, fn func()) Task

	// Every runs fn every d until the task is stopped.
	Every(d time.Duration, fn func()) Task
}

// Real is a Scheduler backed by wall-clock timers. Callbacks fire on timer
// goroutines and are handed to Post, which must run them on the owner's event
// loop (go-app's ctx.Dispatch, or tui.Loop.Post). A task stopped before Post
// gets to run it is skipped.
type Real struct {
	Post func(fn func())
}

var _ Scheduler = Real{}

func (r Real) post(fn func()) {
	if r.Post == nil {
		fn()
		return
	}
	r.Post(fn)
}

type realTask struct {
	mu      sync.Mutex
	stopped bool
	done    bool
	stop    func()
}

func (t *realTask) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.done {
		return false
	}
	t.stopped = true
	t.stop()
	return true
}

// claim reports whether a firing may run; oneShot firings mark the task done.
func (t *realTask) claim(oneShot bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.done {
		return false
	}
	if oneShot {
		t.done = true
	}
	return true
}

// AfterFunc implements Scheduler.
func (r Real) AfterFunc(d time.Duration, fn func()) Task {
	t := &realTask{}
	timer := time.AfterFunc(d, func() {
		r.post(func() {
			if t.claim(true) {
				fn()
			}
		})
	})
	t.stop = func() { timer.Stop() }
	return t
}

// Every implements Scheduler.
func (r Real) Every(d time.Duration, fn func()) Task {
	t := &realTask{}
	ticker := time.NewTicker(d)
	quit := make(chan struct{})
	t.stop = func() {
		ticker.Stop()
		close(quit)
	}
	go func() {
		for {
			select {
			case <-quit:
				return
			case <-ticker.C:
				r.post(func() {
					if t.claim(false) {
						fn()
					}
				})
			}
		}
	}()
	return t
}
