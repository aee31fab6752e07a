package embedding

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/starpointai/starpoint-go/v1/logger"
	"github.com/starpointai/starpoint-go/v1/starpoint"
)

func newObservedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &logger.Logger{Zap: zap.New(core)}, logs
}

type capturedEmbed struct {
	path   string
	header http.Header
	body   map[string]any
}

func newEmbedServer(t *testing.T, status int, respBody string) (*httptest.Server, *capturedEmbed) {
	t.Helper()
	captured := &capturedEmbed{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.header = r.Header.Clone()
		data, _ := io.ReadAll(r.Body)
		captured.body = nil
		if len(data) > 0 {
			_ = json.Unmarshal(data, &captured.body)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func newTestClient(t *testing.T, host string, log *logger.Logger) *Client {
	t.Helper()
	cfg := (&starpoint.Config{
		APIKey:        uuid.New(),
		EmbeddingHost: host,
	}).WithHealthCheckDisabled()

	client, err := NewClient(cfg, log)
	if err != nil {
		t.Fatalf("unexpected error constructing client: %v", err)
	}
	return client
}

func requestItems(t *testing.T, body map[string]any) []any {
	t.Helper()
	items, ok := body["items"].([]any)
	if !ok {
		t.Fatalf("expected items array in request body, got %v", body)
	}
	return items
}

func TestClient_Embed_WrapsTextsAsItems(t *testing.T) {
	server, captured := newEmbedServer(t, http.StatusOK, `{"items":[]}`)
	client := newTestClient(t, server.URL, nil)

	_, err := client.Embed(context.Background(), []string{"first", "second"}, ModelMiniLM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.path != embedPath {
		t.Errorf("expected path %s, got %s", embedPath, captured.path)
	}
	if captured.body["model"] != string(ModelMiniLM) {
		t.Errorf("expected model %s, got %v", ModelMiniLM, captured.body["model"])
	}
	items := requestItems(t, captured.body)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	first, _ := items[0].(map[string]any)
	if first["text"] != "first" {
		t.Errorf("expected text first, got %v", first["text"])
	}
	if first["metadata"] != nil {
		t.Errorf("expected nil metadata, got %v", first["metadata"])
	}
}

func TestClient_EmbedAndJoinMetadataByColumns_TruncatesAndWarnsOnce(t *testing.T) {
	server, captured := newEmbedServer(t, http.StatusOK, `{}`)
	log, logs := newObservedLogger()
	client := newTestClient(t, server.URL, log)

	_, err := client.EmbedAndJoinMetadataByColumns(context.Background(),
		[]string{"first", "second", "third"},
		[]map[string]any{{"label": "a"}},
		ModelMiniLM,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := requestItems(t, captured.body)
	if len(items) != 1 {
		t.Fatalf("expected only the paired prefix to be forwarded, got %d items", len(items))
	}
	if got := len(logs.FilterLevelExact(zapcore.WarnLevel).All()); got != 1 {
		t.Errorf("expected exactly 1 warning, got %d", got)
	}
}

func TestClient_EmbedAndJoinMetadata_SplitsTextFromMetadata(t *testing.T) {
	server, captured := newEmbedServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, server.URL, nil)

	input := []map[string]any{
		{"content": "first", "title": "intro", "page": 1},
	}
	_, err := client.EmbedAndJoinMetadata(context.Background(), input, "content", ModelMiniLM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := requestItems(t, captured.body)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item, _ := items[0].(map[string]any)
	if item["text"] != "first" {
		t.Errorf("expected text first, got %v", item["text"])
	}
	metadata, _ := item["metadata"].(map[string]any)
	if _, ok := metadata["content"]; ok {
		t.Error("expected the embedding key to be removed from metadata")
	}
	if metadata["title"] != "intro" {
		t.Errorf("expected title to survive in metadata, got %v", metadata["title"])
	}

	// The caller's map must not be mutated.
	if input[0]["content"] != "first" {
		t.Errorf("input map was mutated: %v", input[0])
	}
}

func TestClient_EmbedAndJoinMetadata_RejectsEmptyInput(t *testing.T) {
	server, _ := newEmbedServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, server.URL, nil)

	_, err := client.EmbedAndJoinMetadata(context.Background(), nil, "content", ModelMiniLM)

	var valErr *starpoint.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestClient_EmbedAndJoinMetadata_NamesAllOffendingIndices(t *testing.T) {
	server, _ := newEmbedServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, server.URL, nil)

	_, err := client.EmbedAndJoinMetadata(context.Background(), []map[string]any{
		{"content": "fine"},
		{"content": 42},
		{"title": "no text at all"},
	}, "content", ModelMiniLM)

	var valErr *starpoint.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(err.Error(), "[1 2]") {
		t.Errorf("expected both offending indices in the error, got %q", err.Error())
	}
}

func TestClient_NonSuccessStatusReturnsEmptyResult(t *testing.T) {
	server, _ := newEmbedServer(t, http.StatusBadGateway, `upstream error`)
	log, logs := newObservedLogger()
	client := newTestClient(t, server.URL, log)

	resp, err := client.Embed(context.Background(), []string{"first"}, ModelMiniLM)
	if err != nil {
		t.Fatalf("expected nil error for an http-level failure, got %v", err)
	}
	if len(resp) != 0 {
		t.Errorf("expected empty result, got %v", resp)
	}
	if got := len(logs.FilterLevelExact(zapcore.ErrorLevel).All()); got != 1 {
		t.Errorf("expected exactly 1 error log, got %d", got)
	}
}

func TestClient_DefaultsToHostedEndpoint(t *testing.T) {
	cfg := (&starpoint.Config{APIKey: uuid.New()}).WithHealthCheckDisabled()
	client, err := NewClient(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Host() != EmbeddingURL {
		t.Errorf("expected default host %s, got %s", EmbeddingURL, client.Host())
	}
}
