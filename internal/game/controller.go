package game

import (
	"math/rand/v2"
	"slices"
	"strconv"

	"k8s.io/klog/v2"

	"github.com/janpfeifer/GoPairs/internal/clock"
	"github.com/janpfeifer/GoPairs/internal/i18n"
	"github.com/janpfeifer/GoPairs/internal/ui"
)

// Class names of the elements the controller creates.
const (
	CardClass          = "card"
	CardContainerClass = "card-container"
	FormClass          = "form"
	InputClass         = "input"
	ReplayClass        = "button"
	TimerClass         = "button-timer"

	// CardIDAttr holds a card's 0-based position in the grid.
	CardIDAttr = "data-id"
)

// Controller runs the game on top of a ui tree.
type Controller struct {
	cfg      Config
	sched    clock.Scheduler
	notifier Notifier
	msgs     *i18n.Messages
	rng      *rand.Rand

	form   ui.Element
	input  ui.Element
	start  ui.Element
	grid   ui.Element
	replay ui.Element
	timer  ui.Element

	phase   Phase
	session *Session
	restart clock.Task
}

// New builds the game's containers under root. The size form stays hidden
// until Init is called.
func New(root ui.Element, sched clock.Scheduler, notifier Notifier, cfg Config) *Controller {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	c := &Controller{
		cfg:      cfg,
		sched:    sched,
		notifier: notifier,
		rng:      rng,
	}

	formContainer := ui.Create(root, "form-container")
	c.grid = ui.Create(root, CardContainerClass)
	replayContainer := ui.Create(root, "button-next-container")
	timerContainer := ui.Create(root, "timer-container")

	c.form = ui.Create(formContainer, FormClass, "form")
	c.input = ui.Create(c.form, InputClass, "input")
	c.start = ui.Create(c.form, "button", "button")
	c.replay = ui.Create(replayContainer, ReplayClass, "button")
	c.timer = ui.Create(timerContainer, TimerClass, "button")

	c.form.Hide()
	c.form.On("submit", c.Start)
	c.input.SetAttr("type", "text")
	c.start.SetAttr("type", "submit")

	c.replay.Hide()
	c.replay.On("click", c.Restart)

	c.timer.Hide()

	c.Localize(i18n.Load(cfg.Language))
	return c
}

// Localize relabels every static text with msgs.
func (c *Controller) Localize(msgs *i18n.Messages) {
	c.msgs = msgs
	c.input.SetAttr("placeholder", msgs.Get(i18n.InputPlaceholder))
	c.start.Content(msgs.Get(i18n.StartGame))
	c.replay.Content(msgs.Get(i18n.PlayAgain))
	c.timer.Content(msgs.Get(i18n.TimeLeft, c.Remaining()))
}

// Messages returns the current catalog.
func (c *Controller) Messages() *i18n.Messages { return c.msgs }

// Init enters the idle phase: no pending card, size form shown.
func (c *Controller) Init() {
	if c.restart != nil {
		c.restart.Stop()
		c.restart = nil
	}
	c.phase = Idle
	c.form.Show()
}

// Start begins a round with the size typed in the form.
func (c *Controller) Start() {
	c.form.Hide()
	if c.session != nil {
		c.session.stop()
	}
	for _, card := range c.grid.Find("." + CardClass) {
		card.Remove()
	}
	c.grid.Show()

	size := ParseGridSize(c.input.Attr("value"))
	c.input.SetAttr("value", "")
	for _, class := range sizeClasses {
		c.grid.RemoveClass(class)
	}
	c.grid.AddClass(SizeClass(size))

	values := Values(size)
	Shuffle(c.rng, values)
	s := newSession(size, values, c.cfg.Countdown)
	c.session = s
	c.phase = Playing
	klog.Infof("Round %s: started %dx%d grid", s.ID, size, size)

	c.timer.Show()
	c.startCountdown(s)

	for i := range values {
		card := ui.Create(c.grid, CardClass)
		card.SetAttr(CardIDAttr, strconv.Itoa(i))
		card.On("click", func() { c.reveal(s, card, i) })
		s.cards = append(s.cards, card)
	}
}

func (c *Controller) startCountdown(s *Session) {
	s.remaining = c.cfg.Countdown
	c.timer.Content(c.msgs.Get(i18n.TimeLeft, s.remaining))
	c.grid.Enable()
	s.countdown = c.sched.Every(c.cfg.Tick, func() { c.tick(s) })
}

func (c *Controller) tick(s *Session) {
	if s.remaining == 0 {
		c.endRound(s, TimedOut)
		return
	}
	s.remaining--
	c.timer.Content(c.msgs.Get(i18n.TimeLeft, s.remaining))
}

func (c *Controller) reveal(s *Session, card ui.Element, index int) {
	if s.over || s != c.session {
		return
	}
	value := s.values[index]
	card.Content(strconv.Itoa(value))
	card.Disable()
	klog.V(1).Infof("Round %s: revealed card %d (%d)", s.ID, index, value)

	if s.pending == noCard {
		s.pending = index
		return
	}

	if s.values[s.pending] != value {
		first := s.cards[s.pending]
		c.grid.Disable()
		var task clock.Task
		task = c.sched.AfterFunc(c.cfg.MismatchDelay, func() {
			s.untrack(task)
			card.Content("")
			first.Content("")
			c.grid.Enable()
			card.Enable()
			first.Enable()
			s.pending = noCard
		})
		s.track(task)
		return
	}

	s.pending = noCard
	if c.allRevealed() {
		c.endRound(s, Won)
	}
}

func (c *Controller) allRevealed() bool {
	for _, card := range c.grid.Find("." + CardClass) {
		if card.Text() == "" {
			return false
		}
	}
	return true
}

// endRound runs the round-end actions once per round.
func (c *Controller) endRound(s *Session, outcome Phase) {
	if s.over {
		return
	}
	s.over = true
	s.stop()
	c.phase = outcome

	c.grid.Disable()
	c.timer.Hide()
	c.replay.Show()

	msg := c.msgs.Get(i18n.YouWon)
	if outcome == TimedOut {
		msg = c.msgs.Get(i18n.TimeIsUp)
	}
	klog.Infof("Round %s: %s with %ds left", s.ID, outcome, s.remaining)
	c.notifier.Notify(msg)
}

// Restart clears the finished round and, after a short delay, shows the size
// form again.
func (c *Controller) Restart() {
	c.replay.Hide()
	for _, card := range c.grid.Find("." + CardClass) {
		card.Remove()
	}
	if c.session != nil {
		c.session.stop()
		c.session = nil
	}
	c.restart = c.sched.AfterFunc(c.cfg.RestartDelay, c.Init)
}

// Close stops every scheduled callback. The controller must not be used
// afterwards.
func (c *Controller) Close() {
	if c.session != nil {
		c.session.stop()
	}
	if c.restart != nil {
		c.restart.Stop()
		c.restart = nil
	}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Pending returns the index of the revealed, not yet compared card.
func (c *Controller) Pending() (int, bool) {
	if c.session == nil || c.session.pending == noCard {
		return 0, false
	}
	return c.session.pending, true
}

// Remaining returns the seconds left in the current round, or the full
// countdown when no round is running.
func (c *Controller) Remaining() int {
	if c.session == nil {
		return c.cfg.Countdown
	}
	return c.session.remaining
}

// Size returns the grid side of the current round, 0 when idle.
func (c *Controller) Size() int {
	if c.session == nil {
		return 0
	}
	return c.session.size
}

// Values returns a copy of the current round's shuffled values.
func (c *Controller) Values() []int {
	if c.session == nil {
		return nil
	}
	return slices.Clone(c.session.values)
}

// RoundID returns the id of the current round, "" when idle.
func (c *Controller) RoundID() string {
	if c.session == nil {
		return ""
	}
	return c.session.ID
}
