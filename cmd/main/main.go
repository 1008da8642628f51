package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/UnknownOlympus/horae/internal/config"
	"github.com/UnknownOlympus/horae/internal/lib/logger/sl"
	"github.com/UnknownOlympus/horae/internal/metrics"
	"github.com/UnknownOlympus/horae/internal/repository"
	"github.com/UnknownOlympus/horae/internal/server"
	"github.com/UnknownOlympus/horae/internal/services/attendance"
	"github.com/UnknownOlympus/horae/internal/services/dashboard"
	"github.com/UnknownOlympus/horae/internal/services/employees"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	var wgr sync.WaitGroup
	delta := 2

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Invalid timezone: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	dtb, err := repository.NewDatabase(
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dtb.Close()

	employeeRepo := repository.NewEmployeeRepository(dtb, appMetrics)
	attendanceRepo := repository.NewAttendanceRepository(dtb, appMetrics)
	dashboardRepo := repository.NewDashboardRepository(dtb, appMetrics)

	staff := employees.NewStaff(logger, employeeRepo, appMetrics)
	register := attendance.NewRegister(logger, attendanceRepo, employeeRepo, appMetrics)
	reporter := dashboard.NewReporter(logger, dashboardRepo, loc)

	api := server.NewAPI(logger, staff, register, reporter, appMetrics)

	wgr.Add(delta)

	go func() {
		defer wgr.Done()
		if err := server.StartMonitoringServer(
			ctx, logger, reg, dtb, cfg.HTTP.MetricsPort, cfg.HTTP.ShutdownTimeout); err != nil {
			logger.ErrorContext(ctx, "Monitoring server failed", sl.Err(err))
			stop()
		}
	}()

	go func() {
		defer wgr.Done()
		logger.InfoContext(ctx, "Starting API", "port", cfg.HTTP.Port, "timezone", loc.String())
		if err := server.Serve(
			ctx, logger.With(slog.String("server", "api")), api.Routes(), cfg.HTTP.Port, cfg.HTTP.ShutdownTimeout,
		); err != nil {
			logger.ErrorContext(ctx, "API server failed", sl.Err(err))
			stop()
		}
		logger.InfoContext(ctx, "API stopped.")
	}()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	wgr.Wait()

	logger.InfoContext(context.Background(), "Application stopped gracefully...")
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{Key: "", Value: slog.Value{}}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{Key: "", Value: slog.Value{}}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified, or was invalid. Logging will be minimal, by default." +
				" Please specify the value of `env`: local, development, production")
	}

	return log
}
