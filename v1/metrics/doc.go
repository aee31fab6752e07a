// Package metrics provides Prometheus instrumentation for the SDK's
// Starpoint API calls.
//
// Every request issued through the core transport can be counted and timed:
// a CounterVec keyed by endpoint and status (success, http_error,
// transport_error) and a HistogramVec of request latencies keyed by endpoint.
// The package keeps its own isolated registry so it never collides with
// metrics registered by the host application, and can optionally expose a
// /metrics scrape endpoint on a dedicated address.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" pattern:
//   - MetricsCollector interface: the contract the core transport depends on
//   - Metrics struct: concrete implementation
//   - NewMetrics constructor: returns *Metrics
//   - FXModule: provides *Metrics and manages server lifecycle
//
// # Direct usage
//
//	m := metrics.NewMetrics(metrics.Config{
//	    ServiceName: "ingest-worker",
//	})
//	cfg := starpoint.NewConfig().WithMetrics(m)
//
// # Thread safety
//
// All methods on the Metrics struct and Prometheus collectors are safe for
// concurrent use by multiple goroutines.
package metrics
