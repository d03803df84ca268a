// Package tui plays the game in a terminal: it draws the element tree with
// colours and turns typed lines into the events the browser would send.
package tui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"

	"github.com/janpfeifer/GoPairs/internal/game"
	"github.com/janpfeifer/GoPairs/internal/ui"
)

const clearScreen = "\033[H\033[2J"

// Renderer draws the visible parts of the element tree.
type Renderer struct {
	out    io.Writer
	width  int
	plain  bool // no colours and no screen clearing
	notice string

	colorCard     color.Style
	colorRevealed color.Style
	colorSubtle   color.Style
	colorTimer    color.Style
	colorPrompt   color.Style
	colorNotice   color.Style
}

// NewRenderer creates a renderer writing to out, centring on width columns.
func NewRenderer(out io.Writer, width int, plain bool) *Renderer {
	return &Renderer{
		out:           out,
		width:         width,
		plain:         plain,
		colorCard:     color.Style{color.FgBlue, color.OpBold},
		colorRevealed: color.Style{color.FgGreen, color.OpBold},
		colorSubtle:   color.Style{color.FgGray},
		colorTimer:    color.Style{color.FgYellow},
		colorPrompt:   color.Style{color.FgMagenta, color.OpBold},
		colorNotice:   color.Style{color.FgWhite, color.BgRed, color.OpBold},
	}
}

// SetNotice shows msg under the board until it is replaced or cleared.
func (r *Renderer) SetNotice(msg string) {
	r.notice = msg
}

func (r *Renderer) paint(s color.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Sprint(text)
}

// centre pads line so it is centred on the terminal.
func (r *Renderer) centre(sb *strings.Builder, line string) {
	visible := utf8.RuneCountInString(color.ClearCode(line))
	if pad := (r.width - visible) / 2; pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	sb.WriteString(line)
	sb.WriteString("\n")
}

// Draw writes the current state of the tree.
func (r *Renderer) Draw(root *ui.Node) {
	var sb strings.Builder
	if !r.plain {
		sb.WriteString(clearScreen)
	}
	sb.WriteString("\n")

	if timer := first(root, "."+game.TimerClass); timer != nil && timer.Visible() {
		r.centre(&sb, r.paint(r.colorTimer, timer.Text()))
		sb.WriteString("\n")
	}
	if grid := first(root, "."+game.CardContainerClass); grid != nil && grid.Visible() {
		r.drawGrid(&sb, grid)
	}
	if replay := replayButton(root); replay != nil && replay.Visible() {
		r.centre(&sb, r.paint(r.colorPrompt, "[ "+replay.Text()+" ]"))
	}
	if r.notice != "" {
		sb.WriteString("\n")
		r.centre(&sb, r.paint(r.colorNotice, " "+r.notice+" "))
	}
	if form := first(root, "form"); form != nil && form.Visible() {
		if input := first(form, "input"); input != nil {
			sb.WriteString("\n")
			sb.WriteString(r.paint(r.colorPrompt, input.Attr("placeholder")))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("> ")
	fmt.Fprint(r.out, sb.String())
}

func (r *Renderer) drawGrid(sb *strings.Builder, grid *ui.Node) {
	cards := nodes(grid, "."+game.CardClass)
	if len(cards) == 0 {
		return
	}
	side := int(math.Sqrt(float64(len(cards))))

	var header strings.Builder
	header.WriteString("   ")
	for col := 1; col <= side; col++ {
		fmt.Fprintf(&header, "%4d", col)
	}
	r.centre(sb, r.paint(r.colorSubtle, header.String()))

	for row := 0; row < side; row++ {
		var line strings.Builder
		line.WriteString(r.paint(r.colorSubtle, fmt.Sprintf("%3d", row+1)))
		for col := 0; col < side; col++ {
			card := cards[row*side+col]
			switch {
			case card.Text() != "":
				line.WriteString(r.paint(r.colorRevealed, fmt.Sprintf("%4s", card.Text())))
			case !card.Interactive():
				line.WriteString(r.paint(r.colorSubtle, "   #"))
			default:
				line.WriteString(r.paint(r.colorCard, "   #"))
			}
		}
		r.centre(sb, line.String())
	}
	sb.WriteString("\n")
}

func nodes(root *ui.Node, selector string) []*ui.Node {
	found := root.Find(selector)
	out := make([]*ui.Node, 0, len(found))
	for _, e := range found {
		if n, ok := e.(*ui.Node); ok {
			out = append(out, n)
		}
	}
	return out
}

func first(root *ui.Node, selector string) *ui.Node {
	if found := nodes(root, selector); len(found) > 0 {
		return found[0]
	}
	return nil
}

func replayButton(root *ui.Node) *ui.Node {
	container := first(root, ".button-next-container")
	if container == nil {
		return nil
	}
	return first(container, "button")
}
