package prometheus

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/timeexchange/timeexchange"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the landing page counters. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry *prom.Registry

	views   *prom.CounterVec
	renders *prom.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prom.NewRegistry(),
		views: prom.NewCounterVec(prom.CounterOpts{
			Namespace: timeexchange.Name,
			Name:      "page_views_total",
			Help:      "Landing page views by resolved locale.",
		}, []string{"locale"}),
		renders: prom.NewCounterVec(prom.CounterOpts{
			Namespace: timeexchange.Name,
			Name:      "page_renders_total",
			Help:      "Landing page renders (page cache misses) by locale.",
		}, []string{"locale"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.views,
		m.renders,
	)
	return m
}

func (m *Metrics) PageViewed(l timeexchange.Locale) {
	if m == nil {
		return
	}
	m.views.WithLabelValues(l.String()).Inc()
}

func (m *Metrics) PageRendered(l timeexchange.Locale) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(l.String()).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Serve exposes the metrics on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.WarnContext(ctx, "Error shutting down metrics server", slog.Any("err", err))
		}
	}()

	slog.InfoContext(ctx, "Serving Prometheus metrics", slog.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
