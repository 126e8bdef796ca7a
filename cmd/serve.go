package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ijalalfrz/trip-flight-planner/internal/app/config"
	"github.com/ijalalfrz/trip-flight-planner/internal/app/endpoints"
	"github.com/ijalalfrz/trip-flight-planner/internal/app/transport"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve trip searches over HTTP",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runApp(cmd.Context(), cfg)
	},
}

func runApp(parent context.Context, cfg config.Config) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	deps, err := newDependencies(ctx, &cfg)
	if err != nil {
		return err
	}
	defer deps.close()

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		defer cancel()
		startHTTPServer(ctx, cfg, deps)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "HTTP server stopped")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")

	return nil
}

func startHTTPServer(ctx context.Context, cfg config.Config, deps *dependencies) {
	endpts := makeEndpoints(deps)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		return
	case <-ctx.Done():
	}

	if err := server.Shutdown(context.WithoutCancel(ctx)); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(deps *dependencies) endpoints.Endpoints {
	return endpoints.Endpoints{
		TripEndpoint: endpoints.MakeTripEndpoint(func() endpoints.TripService {
			return deps.newTripService()
		}),
	}
}
