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

	"golang.org/x/sync/errgroup"

	"github.com/timeexchange/timeexchange"
	"github.com/timeexchange/timeexchange/integrations/prometheus"
	"github.com/timeexchange/timeexchange/internal/config"
	"github.com/timeexchange/timeexchange/internal/telemetry"
	"github.com/timeexchange/timeexchange/web"
	"github.com/timeexchange/timeexchange/web/views"
)

type ServeCmd struct{}

func (c *ServeCmd) Run(g *Globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx, g.Config)
	if err != nil {
		return err
	}

	handler, logFile, err := timeexchange.NewLogHandler(cfg.Log.Debug, os.Stdout, cfg.Log.Dir)
	if err != nil {
		return err
	}
	defer logFile.Close()
	slog.SetDefault(slog.New(handler))

	slog.InfoContext(ctx, "Starting Time Exchange", slog.String("version", timeexchange.Version))
	if cfg.Log.Debug {
		slog.WarnContext(ctx, "Debug mode activated")
	}

	shutdownTracing, err := telemetry.Setup(ctx, timeexchange.Name, timeexchange.Version, cfg.Telemetry.Endpoint)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			slog.WarnContext(ctx, "Could not flush traces", slog.Any("err", err))
		}
	}()

	catalog, err := loadCatalog(cfg.Translations)
	if err != nil {
		return err
	}

	var metrics *prometheus.Metrics
	if cfg.Metrics.Enabled {
		metrics = prometheus.New()
	}

	rt, err := web.NewWeb(catalog, web.Options{
		Form: views.Form{
			Name:   cfg.Signup.FormName,
			Action: cfg.Signup.FormAction,
			Method: cfg.Signup.FormMethod,
		},
		CacheSize:      cfg.Server.CacheSize,
		RequestTimeout: cfg.Server.RequestTimeout,
		Metrics:        metrics,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           rt.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		slog.InfoContext(ctx, "Listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not serve: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	if metrics != nil {
		eg.Go(func() error {
			return metrics.Serve(egCtx, cfg.MetricsAddress())
		})
	}

	return eg.Wait()
}
