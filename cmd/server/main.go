package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"survey-distance-service/internal/api"
	"survey-distance-service/internal/config"
	"survey-distance-service/internal/platform/logging"
	"survey-distance-service/internal/platform/metrics"
	"syscall"

	"github.com/spf13/pflag"
)

// main is the application composition root.
// It loads configuration, wires the router and serves until SIGINT/SIGTERM.
func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("server", pflag.ContinueOnError)
	configPath := flags.String("config", config.Get("CONFIG_PATH", ""), "path to a config file (toml, yaml or json)")
	flags.String("port", "", "HTTP listen port")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(config.Options{
		Path:     *configPath,
		Flags:    flags,
		FlagKeys: map[string]string{"port": "http.port"},
	})
	if err != nil {
		return err
	}

	_, logCloser := logging.Init(cfg.Log, "geodist-server")
	if logCloser != nil {
		defer logCloser.Close()
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	router := api.NewRouter(api.Options{
		Metrics:         m,
		MetricsPath:     cfg.Metrics.Path,
		MaxBodyBytes:    cfg.HTTP.MaxBodyBytes,
		MaxSurveyPoints: cfg.Survey.MaxPoints,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "metrics", cfg.Metrics.Enabled)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down", "timeout", cfg.HTTP.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
