package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/horae/internal/lib/logger/sl"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const readHeaderTimeout = 5 * time.Second

// MonitoringHandler serves /metrics from the registry and /healthz from the health checker.
func MonitoringHandler(reg *prometheus.Registry, health http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true, Registry: reg}))
	mux.Handle("/healthz", health)
	return mux
}

// StartMonitoringServer serves metrics and health checks until ctx is cancelled.
func StartMonitoringServer(
	ctx context.Context,
	log *slog.Logger,
	reg *prometheus.Registry,
	db DBPinger,
	port int,
	shutdownTimeout time.Duration,
) error {
	handler := MonitoringHandler(reg, NewHealthChecker(db, log))
	return Serve(ctx, log.With(slog.String("server", "monitoring")), handler, port, shutdownTimeout)
}

// Serve runs an HTTP server on port until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, log *slog.Logger, handler http.Handler, port int, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server on %s failed: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(shutdownCtx, "Graceful shutdown failed", sl.Err(err))
		return fmt.Errorf("failed to shut down server on %s: %w", srv.Addr, err)
	}
	log.InfoContext(shutdownCtx, "HTTP server stopped", "addr", srv.Addr)

	return nil
}
