// Package datadog implements a DogStatsD backend for the metrics package.
//
// Labels become Datadog tags ("dialect:postgres"), counters map to Count
// and duration observations to Histogram. All Datadog-specific wiring
// stays in this package; the rest of the project sees only
// metrics.Backend and can swap backends without other changes.
package datadog

import (
	"fmt"

	"schemagen/internal/metrics"

	"github.com/DataDog/datadog-go/v5/statsd"
)

// Config holds the DogStatsD client settings.
type Config struct {
	// Addr is the agent address, e.g. "127.0.0.1:8125" or
	// "unix:///var/run/datadog/dsd.socket".
	Addr string

	// Namespace prefixes every metric name, e.g. "schemagen.".
	Namespace string

	// GlobalTags are attached to every metric,
	// e.g. []string{"service:schemagen"}.
	GlobalTags []string
}

// Backend forwards metrics to a Datadog agent over DogStatsD.
type Backend struct {
	client *statsd.Client
}

// NewBackend dials the configured agent. Addr is required.
func NewBackend(cfg Config) (*Backend, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("datadog: Addr is required")
	}

	var opts []statsd.Option
	if cfg.Namespace != "" {
		opts = append(opts, statsd.WithNamespace(cfg.Namespace))
	}
	if len(cfg.GlobalTags) > 0 {
		opts = append(opts, statsd.WithTags(cfg.GlobalTags))
	}

	c, err := statsd.New(cfg.Addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("datadog: create client: %w", err)
	}
	return &Backend{client: c}, nil
}

// IncCounter maps the counter onto a DogStatsD Count. Count takes an
// int64, so fractional deltas are truncated.
func (b *Backend) IncCounter(name string, delta float64, labels metrics.Labels) {
	if b.client == nil {
		return
	}
	b.client.Count(name, int64(delta), tags(labels), 1)
}

// ObserveHistogram maps the observation onto a DogStatsD Histogram.
func (b *Backend) ObserveHistogram(name string, value float64, labels metrics.Labels) {
	if b.client == nil {
		return
	}
	b.client.Histogram(name, value, tags(labels), 1)
}

// Flush closes the client, which sends anything still buffered. The backend
// stays installed for the life of the process, so close-on-flush fits the
// one-shot export run.
func (b *Backend) Flush() error {
	if b.client == nil {
		return nil
	}
	return b.client.Close()
}

func tags(lbls metrics.Labels) []string {
	if len(lbls) == 0 {
		return nil
	}
	out := make([]string, 0, len(lbls))
	for k, v := range lbls {
		out = append(out, k+":"+v)
	}
	return out
}
