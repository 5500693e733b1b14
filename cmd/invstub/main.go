// invstub serves an in-memory fake of the Kavprime backend API for
// local development of the CLI and TUI. All state is lost on exit.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"invprime/internal/config"
	"invprime/internal/stub"
	"invprime/pkg/logger"
)

func main() {
	cfg := config.Load()
	l := logger.New(cfg.Env)

	store := stub.NewStore()
	store.Seed()

	srv := &http.Server{
		Addr:              ":" + cfg.StubPort,
		Handler:           stub.NewRouter(l, store, cfg.Origin),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		l.Info().Str("addr", srv.Addr).Msg("stub api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	l.Info().Msg("shutdown complete")
}
