package starpoint

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"

	"github.com/starpointai/starpoint-go/v1/logger"
)

func newTestReader(t *testing.T, host string, log *logger.Logger) *Reader {
	t.Helper()
	cfg := &Config{
		APIKey:          uuid.New(),
		ReaderHost:      host,
		SkipHealthCheck: true,
	}
	reader, err := NewReader(cfg, log)
	if err != nil {
		t.Fatalf("unexpected error constructing reader: %v", err)
	}
	return reader
}

func TestReader_Query_NilOptionsSendsNulls(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusOK, `{"results":[]}`)
	reader := newTestReader(t, server.URL, nil)

	resp, err := reader.Query(context.Background(), CollectionByID("col-1"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.method != http.MethodPost {
		t.Errorf("expected POST, got %s", captured.method)
	}
	if captured.path != queryPath {
		t.Errorf("expected path %s, got %s", queryPath, captured.path)
	}
	if captured.body["collection_id"] != "col-1" {
		t.Errorf("expected collection_id col-1, got %v", captured.body["collection_id"])
	}
	// Unset query options are serialized as explicit nulls, not omitted.
	for _, key := range []string{"collection_name", "sql", "query_embedding", "params"} {
		value, ok := captured.body[key]
		if !ok {
			t.Errorf("expected %q to be present in the request body", key)
			continue
		}
		if value != nil {
			t.Errorf("expected null %q, got %v", key, value)
		}
	}
	if _, ok := resp["results"]; !ok {
		t.Errorf("expected response passthrough, got %v", resp)
	}
}

func TestReader_Query_WithSQLAndEmbedding(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusOK, `{}`)
	reader := newTestReader(t, server.URL, nil)

	_, err := reader.Query(context.Background(), CollectionByName("documents"), &QueryOptions{
		SQL:            "SELECT * FROM documents WHERE score > ?",
		QueryEmbedding: &Vector{Values: []float32{0.1, 0.2}, Dimensionality: 2},
		Params:         []any{0.5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.body["sql"] != "SELECT * FROM documents WHERE score > ?" {
		t.Errorf("unexpected sql in request body: %v", captured.body["sql"])
	}
	embedding, ok := captured.body["query_embedding"].(map[string]any)
	if !ok {
		t.Fatalf("expected query_embedding object, got %v", captured.body["query_embedding"])
	}
	if embedding["dimensionality"] != float64(2) {
		t.Errorf("expected dimensionality 2, got %v", embedding["dimensionality"])
	}
	params, ok := captured.body["params"].([]any)
	if !ok || len(params) != 1 {
		t.Errorf("expected 1 query param, got %v", captured.body["params"])
	}
}

func TestReader_InferSchema_BuildsRequest(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusOK, `{"inferred_schema":{}}`)
	reader := newTestReader(t, server.URL, nil)

	_, err := reader.InferSchema(context.Background(), CollectionByName("documents"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.path != inferSchemaPath {
		t.Errorf("expected path %s, got %s", inferSchemaPath, captured.path)
	}
	if captured.body["collection_name"] != "documents" {
		t.Errorf("expected collection_name documents, got %v", captured.body["collection_name"])
	}
	if id, ok := captured.body["collection_id"]; !ok || id != nil {
		t.Errorf("expected explicit null collection_id, got %v (present=%v)", id, ok)
	}
}

func TestReader_NonSuccessStatusReturnsEmptyResult(t *testing.T) {
	server, _ := newCaptureServer(t, http.StatusNotFound, `collection not found`)
	log, logs := newObservedLogger()
	reader := newTestReader(t, server.URL, log)

	resp, err := reader.Query(context.Background(), CollectionByID("missing"), nil)
	if err != nil {
		t.Fatalf("expected nil error for an http-level failure, got %v", err)
	}
	if len(resp) != 0 {
		t.Errorf("expected empty result, got %v", resp)
	}
	if got := countLevel(logs, zapcore.ErrorLevel); got != 1 {
		t.Errorf("expected exactly 1 error log, got %d", got)
	}
}

func TestReader_ZeroRefRejectedBeforeRequest(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusOK, `{}`)
	reader := newTestReader(t, server.URL, nil)

	_, err := reader.InferSchema(context.Background(), CollectionRef{})
	if !errors.Is(err, ErrNoCollectionIdentifier) {
		t.Fatalf("expected ErrNoCollectionIdentifier, got %v", err)
	}
	if captured.method != "" {
		t.Errorf("expected no request to be issued, saw %s", captured.method)
	}
}
