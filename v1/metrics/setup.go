package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and the optional HTTP server
// responsible for exposing SDK metrics.
type Metrics struct {
	// Server is the HTTP server used to expose the /metrics endpoint.
	// Nil when Config.Address is empty.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// The SDK maintains its own isolated registry to prevent metric name
	// collisions with the host application.
	Registry *prometheus.Registry

	// Core built-in metrics
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, registers the SDK request
// metrics, wraps all metrics with a constant `service` label, and, when an
// address is configured, creates an HTTP server exposing /metrics.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "ingest-worker"})
//	cfg := starpoint.NewConfig().WithMetrics(m)
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// All metrics emitted through this registry automatically carry
	// service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.requestsTotal = createCounterVec(
		"starpoint_requests_total",
		"Total number of requests issued against the Starpoint API",
		[]string{"endpoint", "status"},
	)
	m.requestDuration = createHistogramVec(
		"starpoint_request_duration_seconds",
		"Duration of Starpoint API requests in seconds",
		[]string{"endpoint"},
		prometheus.DefBuckets,
	)

	wrappedRegistry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	if cfg.Address != "" {
		handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
		m.Server = &http.Server{
			Addr:    cfg.Address,
			Handler: handler,
		}
	}

	return m
}
