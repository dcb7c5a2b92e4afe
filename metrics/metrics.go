// Package metrics exposes Prometheus instruments for Bombe search runs.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all search metrics on a private Prometheus registry.
type Registry struct {
	KeysTotal      prometheus.Counter
	MenuTestsTotal *prometheus.CounterVec
	StopsTotal     prometheus.Counter
	MenusPlanned   prometheus.Gauge
	WorkersActive  prometheus.Gauge
	RunDuration    *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewRegistry creates a registry with every metric initialised.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	f := promauto.With(r.registry)

	r.KeysTotal = f.NewCounter(prometheus.CounterOpts{
		Name: "bombe_keys_tested_total",
		Help: "Rotor keys run against the menus",
	})
	r.MenuTestsTotal = f.NewCounterVec(prometheus.CounterOpts{
		Name: "bombe_menu_tests_total",
		Help: "Stop tests executed, by outcome",
	}, []string{"result"})
	r.StopsTotal = f.NewCounter(prometheus.CounterOpts{
		Name: "bombe_stops_total",
		Help: "Keys that produced a stop",
	})
	r.MenusPlanned = f.NewGauge(prometheus.GaugeOpts{
		Name: "bombe_menus_planned",
		Help: "Menus kept for the current run",
	})
	r.WorkersActive = f.NewGauge(prometheus.GaugeOpts{
		Name: "bombe_workers_active",
		Help: "Search workers currently running",
	})
	r.RunDuration = f.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bombe_run_duration_seconds",
		Help:    "Wall time of a search run",
		Buckets: []float64{0.01, 0.1, 1, 10, 60, 600, 3600},
	}, []string{"status"})

	return r
}

// Prometheus returns the underlying registry, e.g. for promhttp.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// RecordMenuTest counts one stop test.
func (r *Registry) RecordMenuTest(stop bool) {
	if stop {
		r.MenuTestsTotal.WithLabelValues("stop").Inc()
		return
	}
	r.MenuTestsTotal.WithLabelValues("reject").Inc()
}

// RecordRun observes the duration of a finished run.
func (r *Registry) RecordRun(status string, d time.Duration) {
	r.RunDuration.WithLabelValues(status).Observe(d.Seconds())
}
