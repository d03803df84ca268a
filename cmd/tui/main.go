package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/janpfeifer/GoPairs/internal/game"
	"github.com/janpfeifer/GoPairs/internal/i18n"
	"github.com/janpfeifer/GoPairs/internal/tui"
	"k8s.io/klog/v2"
)

var (
	flagLang      = flag.String("lang", i18n.DefaultLanguage, "Language of the messages (en, ru)")
	flagSeed      = flag.Uint64("seed", 0, "Shuffle seed, 0 for a random one")
	flagCountdown = flag.Int("countdown", game.DefaultConfig().Countdown, "Seconds per round")
)

func main() {
	klog.InitFlags(nil)
	flag.Set("logtostderr", "false")
	flag.Set("stderrthreshold", "ERROR")
	flag.Parse()
	defer klog.Flush()

	cfg := game.DefaultConfig()
	cfg.Language = *flagLang
	cfg.Countdown = *flagCountdown
	if *flagSeed != 0 {
		cfg.Rand = rand.New(rand.NewPCG(*flagSeed, *flagSeed))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := tui.Options{
		Config: cfg,
		Width:  tui.Width(os.Stdout),
		Plain:  !tui.IsTerminal(os.Stdout),
	}
	if err := tui.Run(ctx, os.Stdin, os.Stdout, opts); err != nil {
		klog.Fatal(err)
	}
}
