package frontend

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"

	"github.com/janpfeifer/GoPairs/internal/clock"
	"github.com/janpfeifer/GoPairs/internal/game"
	"github.com/janpfeifer/GoPairs/internal/i18n"
	"github.com/janpfeifer/GoPairs/internal/ui"
)

// Board is the game page: it owns the element tree and the controller, and
// renders the tree on every update.
type Board struct {
	app.Compo

	root       *ui.Node
	controller *game.Controller
}

func (b *Board) OnAppUpdate(ctx app.Context) {
	klog.Infof("Board component: App update available, not reloading not to interrupt the game...")
}

func (b *Board) OnMount(ctx app.Context) {
	klog.Infof("Board component: OnMount called")
	if app.IsServer {
		return
	}
	State.LanguageFromURL()

	// Timer callbacks fire on their own goroutines; Dispatch brings them back
	// to the UI goroutine and re-renders afterwards.
	sched := clock.Real{Post: func(fn func()) {
		ctx.Dispatch(func(ctx app.Context) { fn() })
	}}

	// The alert blocks, so show it after the final state has been rendered.
	notifier := game.NotifierFunc(func(msg string) {
		ctx.Defer(func(ctx app.Context) {
			app.Window().Call("alert", msg)
		})
	})

	cfg := game.DefaultConfig()
	cfg.Language = State.Language
	b.root = ui.NewRoot(nil)
	b.controller = game.New(b.root, sched, notifier, cfg)
	b.controller.Init()

	State.Listeners["board"] = func() {
		ctx.Dispatch(func(ctx app.Context) {
			b.controller.Localize(i18n.Load(State.Language))
		})
	}
}

func (b *Board) OnDismount() {
	klog.Infof("Board component: OnDismount called")
	delete(State.Listeners, "board")
	if b.controller != nil {
		b.controller.Close()
	}
}

func (b *Board) Render() app.UI {
	var content app.UI
	if b.root == nil {
		content = app.Div().Aria("busy", "true").Text("...")
	} else {
		content = app.Div().Class("board").Body(renderChildren(b.root)...)
	}

	return app.Main().Class("container").Body(
		&TopBar{Language: State.Language},
		content,
	)
}
