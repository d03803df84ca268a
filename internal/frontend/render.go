package frontend

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/janpfeifer/GoPairs/internal/ui"
)

func renderChildren(n *ui.Node) []app.UI {
	children := n.Children()
	out := make([]app.UI, 0, len(children))
	for _, c := range children {
		out = append(out, renderNode(c))
	}
	return out
}

// renderNode maps an element of the tree to go-app elements. DOM events are
// forwarded to the tree, which drops them for hidden or disabled elements.
func renderNode(n *ui.Node) app.UI {
	switch n.Tag() {
	case "form":
		form := app.Form().OnSubmit(func(ctx app.Context, e app.Event) {
			e.PreventDefault()
			n.Dispatch("submit")
		})
		for _, c := range n.Classes() {
			form = form.Class(c)
		}
		return form.Body(renderChildren(n)...)

	case "input":
		input := app.Input().
			Type(n.Attr("type")).
			Placeholder(n.Attr("placeholder")).
			Value(n.Attr("value")).
			OnInput(func(ctx app.Context, e app.Event) {
				n.SetAttr("value", ctx.JSSrc().Get("value").String())
			})
		for _, c := range n.Classes() {
			input = input.Class(c)
		}
		return input

	case "button":
		typ := n.Attr("type")
		if typ == "" {
			typ = "button"
		}
		button := app.Button().
			Type(typ).
			Text(n.Text()).
			OnClick(func(ctx app.Context, e app.Event) {
				n.Dispatch("click")
			})
		for _, c := range n.Classes() {
			button = button.Class(c)
		}
		return button

	default:
		div := app.Div().OnClick(func(ctx app.Context, e app.Event) {
			n.Dispatch("click")
		})
		for _, c := range n.Classes() {
			div = div.Class(c)
		}
		if id := n.Attr("data-id"); id != "" {
			div = div.DataSet("id", id)
		}
		if len(n.Children()) == 0 {
			return div.Text(n.Text())
		}
		return div.Body(renderChildren(n)...)
	}
}
