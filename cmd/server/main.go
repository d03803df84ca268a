package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/janpfeifer/GoPairs/internal/server"
	"k8s.io/klog/v2"
)

var (
	flagAddr = flag.String("addr", "", "Address to listen on (default: auto-port on localhost)")
	flagWeb  = flag.String("web", server.WebDir, "Directory with the static assets and app.wasm")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()
	server.WebDir = *flagWeb

	started := make(chan *server.ServerState, 1)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		state := <-started
		fmt.Printf("GoPairs server listening on http://%s\n", state.Address)
	}()

	if err := server.Run(ctx, *flagAddr, started); err != nil {
		klog.Fatal(err)
	}
}
