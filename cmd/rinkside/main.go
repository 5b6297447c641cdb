package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"rinkside/internal/config"
	"rinkside/internal/logging"
	"rinkside/internal/metrics"
	"rinkside/internal/nhl"
	"rinkside/internal/tui"
)

const appVersion = "dev"

func main() {
	// Local overrides; absence is fine.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		File:    cfg.LogFile,
		Service: "rinkside",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec, promHandler, shutdownMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.OtelService,
		OtlpEndpoint: cfg.Metrics.OtelEndpoint,
		OtlpInsecure: cfg.Metrics.OtelInsecure,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "metrics setup failed:", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownMetrics(shutdownCtx); err != nil {
			logging.Warn(logger, "metrics shutdown failed", "error", err)
		}
	}()

	if promHandler != nil {
		go serveMetrics(cfg.Metrics.Port, promHandler, logger)
	}

	client := nhl.NewClient(nhl.Config{
		BaseURL:    cfg.APIBaseURL,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
		TTL: nhl.TTLConfig{
			Live:     cfg.TTLLive,
			Schedule: cfg.TTLSchedule,
			Static:   cfg.TTLStatic,
		},
		Logger:  logger,
		Metrics: rec,
	})

	app := tui.New(ctx, cfg, client, logger, rec)
	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	app.SetSender(program.Send)

	logging.Info(logger, "starting", "version", appVersion)
	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// serveMetrics exposes the Prometheus scrape endpoint on a side listener so
// the terminal stays dedicated to the interface.
func serveMetrics(port string, handler http.Handler, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logging.Warn(logger, "metrics listener failed", "error", err)
	}
}
