package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quotelookup/internal/app"
	"quotelookup/internal/config"
	"quotelookup/internal/logging"
	"quotelookup/internal/view"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	log := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	a, err := app.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("wiring")
	}
	if cfg.Chart.Dir != "" {
		if err := os.MkdirAll(cfg.Chart.Dir, 0o755); err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Chart.Dir).Msg("chart dir")
		}
	}

	page := view.NewPage()
	ctrl := a.Controller(page)
	defer ctrl.Close()

	h := &handler{
		ctrl:    ctrl,
		page:    page,
		charts:  a.Charts,
		timeout: time.Duration(cfg.Server.RequestTimeoutSec) * time.Second,
		log:     log.Component("http"),
	}
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           h.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	// graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
