package clock

import (
	"slices"
	"time"
)

// Manual is a Scheduler driven by virtual time, for tests. Callbacks run
// synchronously inside Advance, in order of due time and then creation.
type Manual struct {
	now   time.Duration
	seq   int
	tasks []*manualTask
}

var _ Scheduler = (*Manual)(nil)

type manualTask struct {
	m       *Manual
	due     time.Duration
	every   time.Duration
	seq     int
	fn      func()
	stopped bool
	done    bool
}

func (t *manualTask) Stop() bool {
	if t.stopped || t.done {
		return false
	}
	t.stopped = true
	t.m.drop(t)
	return true
}

// NewManual returns a Manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the current virtual time.
func (m *Manual) Now() time.Duration { return m.now }

// Pending returns the number of scheduled tasks.
func (m *Manual) Pending() int { return len(m.tasks) }

func (m *Manual) add(d, every time.Duration, fn func()) *manualTask {
	m.seq++
	t := &manualTask{m: m, due: m.now + d, every: every, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

func (m *Manual) drop(t *manualTask) {
	if i := slices.Index(m.tasks, t); i >= 0 {
		m.tasks = slices.Delete(m.tasks, i, i+1)
	}
}

// AfterFunc implements Scheduler.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Task {
	return m.add(d, 0, fn)
}

// Every implements Scheduler.
func (m *Manual) Every(d time.Duration, fn func()) Task {
	return m.add(d, d, fn)
}

// next returns the earliest task due at or before limit.
func (m *Manual) next(limit time.Duration) *manualTask {
	var best *manualTask
	for _, t := range m.tasks {
		if t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// Advance moves virtual time forward by d, running every callback that
// becomes due, including ones scheduled by callbacks during the advance.
func (m *Manual) Advance(d time.Duration) {
	limit := m.now + d
	for {
		t := m.next(limit)
		if t == nil {
			break
		}
		m.now = t.due
		if t.every > 0 {
			m.seq++
			t.seq = m.seq
			t.due += t.every
		} else {
			t.done = true
			m.drop(t)
		}
		t.fn()
	}
	m.now = limit
}
