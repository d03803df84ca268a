package frontend

import (
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/janpfeifer/GoPairs/internal/i18n"
)

// TopBar shows the title and the language switch. Language is set by the
// parent so the bar re-renders when it changes.
type TopBar struct {
	app.Compo

	Language string
}

func (t *TopBar) onLanguage(lang string) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		e.PreventDefault()
		State.SetLanguage(lang)
	}
}

func (t *TopBar) Render() app.UI {
	msgs := i18n.Load(t.Language)

	var langs []app.UI
	for _, lang := range i18n.Languages() {
		a := app.A().
			Href("#").
			OnClick(t.onLanguage(lang)).
			Text(strings.ToUpper(lang))
		if lang == t.Language {
			a = a.Aria("current", "true")
		}
		langs = append(langs, app.Li().Body(a))
	}

	return app.Nav().Body(
		app.Ul().Body(
			app.Li().Body(
				app.Strong().Text(msgs.Get(i18n.Title)),
			),
		),
		app.Ul().Body(langs...),
	)
}
