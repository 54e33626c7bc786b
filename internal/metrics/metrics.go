// Package metrics provides a small, backend-agnostic abstraction for
// recording operational metrics from export runs.
//
// The package is intentionally minimal and opinionated:
//
//   - It exposes a narrow interface (Backend) focused on counters and
//     timing data.
//   - It provides a global, pluggable backend that defaults to a no-op
//     implementation, so metrics are always safe to call even when no real
//     backend is configured.
//   - It mirrors the registry pattern used elsewhere in the project
//     (schema groups, dialect renderers), keeping concrete metric systems
//     isolated in subpackages.
//
// The primary use case is instrumentation of per-dialect export outcomes
// without coupling the core logic to a specific metrics system such as
// Prometheus or Datadog.
package metrics

import "time"

// Labels are string key/value pairs attached to a metric.
type Labels map[string]string

// Backend is the minimal interface for metrics backends.
// It is intentionally generic so we can plug in Prometheus, Datadog, etc.
type Backend interface {
	// IncCounter increments a counter by delta.
	IncCounter(name string, delta float64, labels Labels)
	// ObserveHistogram records a value in a latency/duration style metric.
	ObserveHistogram(name string, value float64, labels Labels)
	// Flush pushes or flushes metrics, if the backend needs it (e.g. Pushgateway).
	Flush() error
}

// nopBackend is used by default so metrics are optional.
type nopBackend struct{}

func (nopBackend) IncCounter(name string, delta float64, labels Labels)       {}
func (nopBackend) ObserveHistogram(name string, value float64, labels Labels) {}
func (nopBackend) Flush() error                                               { return nil }

var backend Backend = nopBackend{}

// SetBackend installs a concrete backend. Passing nil keeps the existing backend.
func SetBackend(b Backend) {
	if b == nil {
		return
	}
	backend = b
}

// Flush delegates to the current backend.
func Flush() error {
	return backend.Flush()
}

// RecordDialect is a convenience for the common pattern:
// measure latency + success/failure per exported dialect.
func RecordDialect(source, dialect string, err error, d time.Duration) {
	status := "success"
	if err != nil {
		status = "failure"
	}

	lbls := Labels{
		"source":  source,
		"dialect": dialect,
		"status":  status,
	}

	backend.IncCounter("schemagen_dialect_total", 1, lbls)
	backend.ObserveHistogram("schemagen_dialect_duration_seconds", d.Seconds(), lbls)
}

// RecordLinesRemoved counts drop statement lines stripped from one
// dialect's artifact during cleanup.
func RecordLinesRemoved(dialect string, delta int64) {
	if delta <= 0 {
		return
	}
	backend.IncCounter("schemagen_lines_removed_total", float64(delta), Labels{
		"dialect": dialect,
	})
}
