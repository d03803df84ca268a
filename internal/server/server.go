package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"

	"github.com/janpfeifer/GoPairs/internal/frontend"
	"github.com/janpfeifer/GoPairs/internal/game"
)

// WebDir is the directory served under /web/ (stylesheet, app.wasm).
var WebDir = "web"

// ServerState describes a running server.
type ServerState struct {
	Address string
}

// Run starts the server and blocks until the context is canceled.
// An empty addr listens on a free localhost port. If started is not nil it
// receives the server state once the listener is bound.
func Run(ctx context.Context, addr string, started chan<- *ServerState) error {
	// Initialize global state for server-side prerendering without panic
	frontend.InitState()

	// Register go-app routes so the server knows how to prerender them
	app.Route("/", func() app.Composer { return &frontend.Board{} })

	// The web assets and the compiled webassembly
	// are served natively by the go-app framework
	h := &app.Handler{
		Name:        "GoPairs",
		ShortName:   "GoPairs",
		Title:       "GoPairs",
		Description: "A memory matching card game",
		Version:     game.Version,
		Styles: []string{
			"/web/css/main.css",
		},
	}

	mux := http.NewServeMux()
	mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(http.Dir(WebDir))))
	mux.Handle("/", h)

	if addr == "" {
		addr = "localhost:0"
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler: mux,
	}

	state := &ServerState{Address: listener.Addr().String()}
	go func() {
		klog.Infof("Server started on %s", state.Address)
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.Errorf("Server error: %v", err)
		}
	}()
	if started != nil {
		started <- state
	}

	<-ctx.Done()

	// Graceful shutdown with 5 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	klog.Infof("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
