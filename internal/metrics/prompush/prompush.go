// Package prompush implements a Prometheus Pushgateway backend for the
// metrics package.
//
// This package adapts the generic metrics.Backend interface to Prometheus by:
//
//   - Using client_golang CounterVec and SummaryVec collectors.
//   - Mapping the export labels (dialect, status) onto Prometheus labels.
//   - Pushing collected metrics to a Prometheus Pushgateway instance
//     instead of exposing an HTTP scrape endpoint, since the exporter is a
//     short-lived batch process.
//
// The package intentionally contains all Prometheus-specific dependencies
// so the rest of the project remains decoupled from Prometheus and can swap
// to alternative backends (e.g. Datadog) without changes to the core logic.
package prompush

import (
	"fmt"

	"schemagen/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Backend is a Prometheus Pushgateway metrics backend.
type Backend struct {
	gatewayURL string // e.g. http://pushgateway:9091
	jobName    string // Pushgateway "job" group
	reg        *prometheus.Registry

	// Per-dialect export metrics
	dialectCounter  *prometheus.CounterVec // "schemagen_dialect_total"
	dialectDuration *prometheus.SummaryVec // "schemagen_dialect_duration_seconds"

	// Cleanup metrics
	removedCounter *prometheus.CounterVec // "schemagen_lines_removed_total"
}

// NewBackend constructs a Prometheus Pushgateway backend.
// jobName: the Pushgateway "job" name (often the schema source).
// gatewayURL: base URL of the Pushgateway server.
func NewBackend(jobName, gatewayURL string) (*Backend, error) {
	if gatewayURL == "" {
		return nil, fmt.Errorf("prompush: gateway URL is required")
	}
	if jobName == "" {
		jobName = "schemagen"
	}

	reg := prometheus.NewRegistry()

	dialectCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schemagen_dialect_total",
			Help: "Total number of dialect exports, partitioned by dialect and status.",
		},
		[]string{"dialect", "status"},
	)
	dialectDuration := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "schemagen_dialect_duration_seconds",
			Help:       "Duration of dialect exports in seconds, partitioned by dialect and status.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"dialect", "status"},
	)
	removedCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schemagen_lines_removed_total",
			Help: "Drop statement lines removed during artifact cleanup, per dialect.",
		},
		[]string{"dialect"},
	)

	if err := reg.Register(dialectCounter); err != nil {
		return nil, fmt.Errorf("prompush: register dialect counter: %w", err)
	}
	if err := reg.Register(dialectDuration); err != nil {
		return nil, fmt.Errorf("prompush: register dialect summary: %w", err)
	}
	if err := reg.Register(removedCounter); err != nil {
		return nil, fmt.Errorf("prompush: register removed counter: %w", err)
	}

	return &Backend{
		gatewayURL:      gatewayURL,
		jobName:         jobName,
		reg:             reg,
		dialectCounter:  dialectCounter,
		dialectDuration: dialectDuration,
		removedCounter:  removedCounter,
	}, nil
}

func (b *Backend) IncCounter(name string, delta float64, labels metrics.Labels) {
	switch name {
	case "schemagen_dialect_total":
		if b.dialectCounter == nil {
			return
		}
		b.dialectCounter.WithLabelValues(labels["dialect"], labels["status"]).Add(delta)

	case "schemagen_lines_removed_total":
		if b.removedCounter == nil {
			return
		}
		b.removedCounter.WithLabelValues(labels["dialect"]).Add(delta)

	default:
		// unknown metric name: ignore
	}
}

func (b *Backend) ObserveHistogram(name string, value float64, labels metrics.Labels) {
	if name != "schemagen_dialect_duration_seconds" || b.dialectDuration == nil {
		return
	}
	b.dialectDuration.WithLabelValues(labels["dialect"], labels["status"]).Observe(value)
}

// Flush pushes the current registry to the Pushgateway.
func (b *Backend) Flush() error {
	return push.New(b.gatewayURL, b.jobName).
		Gatherer(b.reg).
		Push()
}
