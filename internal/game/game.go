package game

import (
	"math/rand/v2"
	"time"

	"github.com/janpfeifer/GoPairs/internal/i18n"
)

// Version of the game.
// Bumping this number will eventually make clients reload the WASM.
//
// If you set this to an empty string, a random version number will be
// used, and force the reload of the WASM on every restart (the reload
// still only happens after the first page is loaded, so there is a delay).
// This is useful during development.
var Version = "v0.1.0"

// Config holds the tunables of a game.
type Config struct {
	// Countdown is the number of seconds a round lasts.
	Countdown int

	// Tick is the countdown period.
	Tick time.Duration

	// MismatchDelay is how long two different cards stay revealed.
	MismatchDelay time.Duration

	// RestartDelay is the pause between "play again" and the size form.
	RestartDelay time.Duration

	// Language selects the message catalog, see i18n.Load.
	Language string

	// Rand shuffles the cards. If nil a randomly seeded generator is used.
	Rand *rand.Rand
}

// DefaultConfig returns the configuration of the classic game.
func DefaultConfig() Config {
	return Config{
		Countdown:     60,
		Tick:          time.Second,
		MismatchDelay: 500 * time.Millisecond,
		RestartDelay:  30 * time.Millisecond,
		Language:      i18n.DefaultLanguage,
	}
}

// Notifier shows a blocking message to the player.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(msg string)

func (f NotifierFunc) Notify(msg string) { f(msg) }
