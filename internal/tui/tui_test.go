package tui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/janpfeifer/GoPairs/internal/clock"
	"github.com/janpfeifer/GoPairs/internal/game"
	"github.com/janpfeifer/GoPairs/internal/ui"
)

func newGame(t *testing.T) (*ui.Node, *game.Controller, *clock.Manual, *[]string) {
	t.Helper()
	root := ui.NewRoot(nil)
	sched := clock.NewManual()
	var notes []string
	cfg := game.DefaultConfig()
	cfg.Language = "en"
	cfg.Rand = rand.New(rand.NewPCG(5, 6))
	c := game.New(root, sched, game.NotifierFunc(func(msg string) {
		notes = append(notes, msg)
	}), cfg)
	c.Init()
	return root, c, sched, &notes
}

func TestCardIndex(t *testing.T) {
	tests := []struct {
		line  string
		count int
		want  int
		ok    bool
	}{
		{"1 1", 16, 0, true},
		{"2 3", 16, 6, true},
		{"4,4", 16, 15, true},
		{"16", 16, 15, true},
		{"1", 4, 0, true},
		{"0", 16, 0, false},
		{"17", 16, 0, false},
		{"5 1", 16, 0, false},
		{"1 5", 16, 0, false},
		{"a b", 16, 0, false},
		{"1 2 3", 16, 0, false},
		{"", 16, 0, false},
		{"1", 0, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			got, ok := cardIndex(tc.line, tc.count)
			if ok != tc.ok || (ok && got != tc.want) {
				t.Errorf("cardIndex(%q, %d) = %d, %v; want %d, %v", tc.line, tc.count, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestHandle(t *testing.T) {
	root, c, sched, notes := newGame(t)

	if Handle(root, "2") {
		t.Fatalf("Size input must not quit")
	}
	if c.Phase() != game.Playing || c.Size() != 2 {
		t.Fatalf("Expected a 2x2 round, phase %s size %d", c.Phase(), c.Size())
	}

	values := c.Values()
	Handle(root, "1 1")
	if p, ok := c.Pending(); !ok || p != 0 {
		t.Errorf("Pending() = %d, %v; want 0, true", p, ok)
	}
	Handle(root, "9 9") // ignored

	// Finish the partner of the first card, then the remaining pair.
	for i := 1; i < len(values); i++ {
		if values[i] == values[0] {
			Handle(root, strconv.Itoa(i+1))
		}
	}
	for i := 1; i < len(values); i++ {
		if values[i] != values[0] {
			Handle(root, strconv.Itoa(i+1))
		}
	}
	if c.Phase() != game.Won || len(*notes) != 1 {
		t.Fatalf("Expected a win, phase %s notes %v", c.Phase(), *notes)
	}

	// Any line clicks "play again".
	Handle(root, "")
	sched.Advance(30 * time.Millisecond)
	if c.Phase() != game.Idle {
		t.Errorf("Expected idle after play again, got %s", c.Phase())
	}

	if !Handle(root, "q") {
		t.Errorf("Expected q to quit")
	}
}

func TestRendererDraw(t *testing.T) {
	root, _, _, _ := newGame(t)
	var buf bytes.Buffer
	r := NewRenderer(&buf, 40, true)

	r.Draw(root)
	idle := buf.String()
	if !strings.Contains(idle, "Cards per row/column") {
		t.Errorf("Idle screen lacks the size prompt:\n%s", idle)
	}
	if strings.Contains(idle, "Time left") {
		t.Errorf("Idle screen shows the timer:\n%s", idle)
	}

	Handle(root, "4")
	Handle(root, "1 1")
	buf.Reset()
	r.Draw(root)
	playing := buf.String()
	if !strings.Contains(playing, "Time left: 60") {
		t.Errorf("Playing screen lacks the timer:\n%s", playing)
	}
	if got := strings.Count(playing, "#"); got != 15 {
		t.Errorf("Expected 15 face-down cards, got %d:\n%s", got, playing)
	}
	if strings.Contains(playing, clearScreen) {
		t.Errorf("Plain renderer must not clear the screen")
	}

	r.SetNotice("hello")
	buf.Reset()
	r.Draw(root)
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("Notice not drawn:\n%s", buf.String())
	}
}

func TestLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := NewLoop()
	var order []int
	idle := 0
	l.OnIdle = func() { idle++ }
	for i := range 3 {
		l.Post(func() { order = append(order, i) })
	}
	l.Post(cancel)

	if err := l.Run(ctx); err != context.Canceled {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("Callbacks ran as %v", order)
	}
	if idle < 3 {
		t.Errorf("OnIdle ran %d times", idle)
	}

	// Posting after Run returned must not block.
	l.Post(func() {})
}

func TestRun(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := game.DefaultConfig()
	cfg.Language = "en"
	in := strings.NewReader("2\n1 1\nq\n")
	var out bytes.Buffer
	if err := Run(ctx, in, &out, Options{Config: cfg, Width: 60, Plain: true}); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if !strings.Contains(out.String(), "Time left: 60") {
		t.Errorf("Output lacks the timer:\n%s", out.String())
	}
}

func TestRunReadError(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Language = "en"
	readErr := errors.New("broken pipe")
	err := Run(context.Background(), iotest.ErrReader(readErr), io.Discard, Options{Config: cfg, Plain: true})
	if !errors.Is(err, readErr) {
		t.Errorf("Run() = %v, want it to wrap %v", err, readErr)
	}
}
