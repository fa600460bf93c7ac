// Command corsfilterd serves a tiny API behind a CORS filter.
// It is configured through flags or CORSFILTER_* environment variables,
// optionally read from a .env file in the working directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jrfom/corsfilter/cfgerrors"
	"github.com/jrfom/corsfilter/internal/config"
	"github.com/jrfom/corsfilter/internal/server"
)

func main() {
	// A missing .env file is fine; the environment may be set otherwise.
	godotenv.Load()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "corsfilterd: %v\n", err)
		os.Exit(2)
	}

	logger := slog.New(cfg.SlogHandler(os.Stdout))
	slog.SetDefault(logger)

	filter, err := cfg.Filter()
	if err != nil {
		for err := range cfgerrors.All(err) {
			slog.Error("invalid cors parameter", "error", err)
		}
		os.Exit(1)
	}
	filter.SetLogger(logger)

	corsCfg := filter.Config()
	slog.Info("starting corsfilterd",
		"origins", corsCfg.Origins(),
		"methods", corsCfg.Methods(),
		"headers", corsCfg.Headers(),
		"exposed_headers", corsCfg.ExposedHeaders(),
		"credentials", corsCfg.SupportsCredentials(),
		"preflight_max_age", corsCfg.PreflightMaxAge(),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      server.New(filter, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine.
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		slog.Error("http server error", "error", err)
	}

	// Graceful shutdown with timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("http server shutdown error", "error", err)
		os.Exit(1)
	}

	slog.Info("corsfilterd stopped")
}
