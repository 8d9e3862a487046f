package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/incrediblerust/sitegen/internal/config"
	siteerrors "github.com/incrediblerust/sitegen/internal/errors"
	"github.com/incrediblerust/sitegen/internal/metrics"
	"github.com/incrediblerust/sitegen/internal/site"
)

var CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Build struct {
		Source      string `short:"s" help:"Source directory containing the site" default:"."`
		Destination string `short:"d" help:"Destination directory for the generated site" default:"./_site"`
		Config      string `short:"c" help:"Configuration file, relative to the source directory" default:"_config.yml"`
		MetricsAddr string `help:"Expose Prometheus build metrics on this address after the build and block until interrupted (e.g. :9090)"`
	} `cmd:"" help:"Build the static site"`

	Version struct{} `cmd:"" help:"Print the generator version"`
}

const version = "1.0.0"

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("sitegen"),
		kong.Description("Multilingual static site generator"))

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	errs := siteerrors.NewCLIErrorAdapter(CLI.Verbose, logger)

	switch ctx.Command() {
	case "build":
		errs.HandleError(runBuild())
	case "version":
		ctx.Printf("sitegen %s", version)
	default:
		ctx.Exit(1)
	}
}

func runBuild() error {
	cfg, err := config.Load(filepath.Join(CLI.Build.Source, CLI.Build.Config))
	if err != nil {
		return err
	}

	builder, err := site.NewBuilder(CLI.Build.Source, CLI.Build.Destination, cfg)
	if err != nil {
		return err
	}

	var registry *prometheus.Registry
	if CLI.Build.MetricsAddr != "" {
		registry = prometheus.NewRegistry()
		builder.SetRecorder(metrics.NewPrometheusRecorder(registry))
	}

	if err := builder.Build(); err != nil {
		return err
	}

	if registry != nil {
		serveMetrics(CLI.Build.MetricsAddr, registry)
	}
	return nil
}

// serveMetrics serves the Prometheus endpoint so a scraper can collect the
// final build metrics, then shuts down cleanly on SIGINT/SIGTERM.
func serveMetrics(addr string, registry *prometheus.Registry) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:    addr,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.ListenAndServe()
	}()

	slog.Info("Serving build metrics until interrupted", slog.String("addr", addr))
	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Metrics server shutdown failed", slog.String("error", err.Error()))
		}
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", slog.String("error", err.Error()))
		}
	}
}
