// Package metrics exposes Prometheus metrics of the wallet server: open
// sessions, command outcomes and latencies, reaped sessions and build
// information. Metrics live in their own registry served at /metrics.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

const namespace = "wallet_keeper"

// Result label values.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Metrics owns the registry and collectors.
type Metrics struct {
	registry *prometheus.Registry
	commands *prometheus.CounterVec
	duration *prometheus.HistogramVec
	reaped   prometheus.Counter
}

// New registers the collectors. openSessions is sampled on every scrape.
func New(openSessions func() int, info models.AppBuildInfo, network string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	buildInfo := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "Build version, commit and ledger network of the server.",
		},
		[]string{"version", "commit", "network"})
	buildInfo.WithLabelValues(info.BuildVersion(), info.BuildCommit(), network).Set(1)

	startTime := time.Now()
	m := &Metrics{
		registry: reg,
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_total",
				Help:      "Wallet commands by command and result.",
			},
			[]string{"command", "result"}),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "command_duration_seconds",
				Help:      "Wallet command latency.",
				Buckets:   []float64{.005, .025, .1, .25, .5, 1, 2.5, 5, 15, 60},
			},
			[]string{"command"}),
		reaped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sessions_reaped_total",
				Help:      "Sessions closed by the idle reaper.",
			}),
	}

	reg.MustRegister(
		buildInfo,
		m.commands,
		m.duration,
		m.reaped,
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "sessions_open",
				Help:      "Open wallet sessions.",
			},
			func() float64 {
				return float64(openSessions())
			}),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "uptime_seconds",
				Help:      "Uptime of the server in seconds.",
			},
			func() float64 {
				return time.Since(startTime).Seconds()
			}),
	)

	return m
}

// ObserveCommand records one command. rejected classifies caller errors
// (validation, state, wrong secret) apart from failures.
func (m *Metrics) ObserveCommand(command string, started time.Time, err error, rejected func(error) bool) {
	if m == nil {
		return
	}

	result := ResultOK
	switch {
	case err == nil:
	case rejected != nil && rejected(err):
		result = ResultRejected
	default:
		result = ResultError
	}

	m.commands.WithLabelValues(command, result).Inc()
	m.duration.WithLabelValues(command).Observe(time.Since(started).Seconds())
}

// ObserveReaped adds n reaped sessions.
func (m *Metrics) ObserveReaped(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.reaped.Add(float64(n))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ErrorIn reports whether err matches any of targets. It is a helper for
// building rejected classifiers.
func ErrorIn(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
