package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestIncrementRequests(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})

	m.IncrementRequests("/api/v1/documents", "success")
	m.IncrementRequests("/api/v1/documents", "success")
	m.IncrementRequests("/api/v1/documents", "http_error")

	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("/api/v1/documents", "success")); got != 2 {
		t.Errorf("expected 2 success requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("/api/v1/documents", "http_error")); got != 1 {
		t.Errorf("expected 1 http_error request, got %v", got)
	}
}

func TestRecordRequestDuration(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})

	m.RecordRequestDuration(time.Now().Add(-10*time.Millisecond), "/api/v1/query")

	if got := testutil.CollectAndCount(m.requestDuration); got == 0 {
		t.Error("expected the duration histogram to have observations")
	}
}

func TestServiceLabelIsApplied(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "ingest-worker"})
	m.IncrementRequests("/api/v1/documents", "success")

	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, family := range families {
		if family.GetName() != "starpoint_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "service" && label.GetValue() == "ingest-worker" {
					found = true
				}
			}
		}
	}
	if !found {
		t.Error("expected the service label on gathered metrics")
	}
}

func TestServerOnlyWithAddress(t *testing.T) {
	if m := NewMetrics(Config{ServiceName: "test"}); m.Server != nil {
		t.Error("expected no server without an address")
	}
	if m := NewMetrics(Config{ServiceName: "test", Address: ":9130"}); m.Server == nil {
		t.Error("expected a server when an address is configured")
	}
}

func TestCreateCustomMetrics(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})

	counter := m.CreateCounter("ingest_batches_total", "Batches ingested", []string{"source"})
	counter.WithLabelValues("csv").Inc()
	if got := testutil.ToFloat64(counter.WithLabelValues("csv")); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}

	gauge := m.CreateGauge("ingest_queue_depth", "Queue depth", []string{"source"})
	gauge.WithLabelValues("csv").Set(7)
	if got := testutil.ToFloat64(gauge.WithLabelValues("csv")); got != 7 {
		t.Errorf("expected 7, got %v", got)
	}
}
