package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"k8s.io/klog/v2"

	"github.com/janpfeifer/GoPairs/internal/clock"
	"github.com/janpfeifer/GoPairs/internal/game"
	"github.com/janpfeifer/GoPairs/internal/ui"
)

// Handle applies one typed line to the tree and reports whether the player
// asked to quit.
//
// While the size form is shown the line is the grid size. While "play again"
// is shown any line clicks it. Otherwise "row col" (1-based) or a 1-based
// card number clicks that card. Unknown input is ignored.
func Handle(root *ui.Node, line string) (quit bool) {
	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "q", "quit", "exit":
		return true
	}

	if form := first(root, "form"); form != nil && form.Visible() {
		if input := first(form, "input"); input != nil {
			input.SetAttr("value", line)
		}
		form.Dispatch("submit")
		return false
	}
	if replay := replayButton(root); replay != nil && replay.Visible() {
		replay.Dispatch("click")
		return false
	}

	cards := nodes(root, "."+game.CardClass)
	if index, ok := cardIndex(line, len(cards)); ok {
		if !cards[index].Dispatch("click") {
			klog.V(1).Infof("tui: card %d ignored the click", index)
		}
	}
	return false
}

// cardIndex parses "row col" or "n" into a 0-based index into count cards.
func cardIndex(line string, count int) (int, bool) {
	side := int(math.Sqrt(float64(count)))
	if side == 0 {
		return 0, false
	}
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return 0, false
		}
		nums = append(nums, n)
	}

	var index int
	switch len(nums) {
	case 1:
		index = nums[0] - 1
	case 2:
		row, col := nums[0], nums[1]
		if row < 1 || row > side || col < 1 || col > side {
			return 0, false
		}
		index = (row-1)*side + col - 1
	default:
		return 0, false
	}
	if index < 0 || index >= count {
		return 0, false
	}
	return index, true
}

// Options configure Run.
type Options struct {
	Config game.Config

	// Width of the terminal, used to centre the board.
	Width int

	// Plain disables colours and screen clearing.
	Plain bool
}

// Run plays the game reading commands from in and drawing to out, until
// the player quits, in reaches EOF or ctx is done.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := NewLoop()
	renderer := NewRenderer(out, opts.Width, opts.Plain)

	dirty := true
	root := ui.NewRoot(nil)
	notifier := game.NotifierFunc(func(msg string) {
		renderer.SetNotice(msg)
		dirty = true
	})
	controller := game.New(root, clock.Real{Post: loop.Post}, notifier, opts.Config)
	defer controller.Close()
	root.SetOnChange(func() { dirty = true })

	redraw := func() {
		if dirty {
			dirty = false
			renderer.Draw(root)
		}
	}
	loop.OnIdle = redraw

	var readErr error
	loop.Post(controller.Init)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			line := scanner.Text()
			loop.Post(func() {
				renderer.SetNotice("")
				dirty = true
				if Handle(root, line) {
					cancel()
				}
			})
		}
		err := scanner.Err()
		loop.Post(func() {
			if err != nil {
				readErr = fmt.Errorf("reading input: %w", err)
			}
			cancel()
		})
	}()

	err := loop.Run(ctx)
	fmt.Fprintln(out)
	if readErr != nil {
		return readErr
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
