package game

import (
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"github.com/janpfeifer/GoPairs/internal/clock"
	"github.com/janpfeifer/GoPairs/internal/ui"
)

// Phase of the game.
type Phase int

const (
	Idle Phase = iota
	Playing
	Won
	TimedOut
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case TimedOut:
		return "timed-out"
	}
	return "unknown"
}

// noCard marks the absence of a pending card.
const noCard = -1

// Session is the state of one round.
type Session struct {
	ID        string
	size      int
	values    []int
	cards     []ui.Element
	pending   int
	remaining int
	over      bool

	countdown clock.Task
	tasks     mapset.Set[clock.Task] // outstanding delayed callbacks
}

func newSession(size int, values []int, countdown int) *Session {
	return &Session{
		ID:        uuid.NewString(),
		size:      size,
		values:    values,
		pending:   noCard,
		remaining: countdown,
		tasks:     mapset.New[clock.Task](),
	}
}

// track records a delayed task so stop can cancel it.
func (s *Session) track(t clock.Task) {
	s.tasks.Put(t)
}

func (s *Session) untrack(t clock.Task) {
	s.tasks.Remove(t)
}

// stop cancels the countdown and every outstanding delayed callback.
func (s *Session) stop() {
	if s.countdown != nil {
		s.countdown.Stop()
	}
	s.tasks.Each(func(t clock.Task) {
		t.Stop()
	})
	s.tasks = mapset.New[clock.Task]()
}
