package starpoint

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/starpointai/starpoint-go/v1/logger"
)

// apiHeaderKey is the header carrying the API key on every request.
const apiHeaderKey = "x-starpoint-key"

// healthCheckMessage is the body a healthy host answers to a bare GET.
const healthCheckMessage = "hello."

const embeddingMetadataMismatchWarning = "embedding and metadata counts differ; " +
	"pairing by index and truncating to the shorter input, trailing elements are dropped"

// buildHeader builds the header set for a Starpoint request. The API key is
// always present under apiHeaderKey; additional headers merge in with
// last-write-wins on collision.
func buildHeader(apiKey uuid.UUID, additional map[string]string) http.Header {
	header := http.Header{}
	header.Set(apiHeaderKey, apiKey.String())
	for key, value := range additional {
		header.Set(key, value)
	}
	return header
}

// setAndValidateHost normalizes a host before a client binds to it. The host
// must be a non-empty absolute URL; trailing slashes are trimmed so path
// composition later never produces doubled slashes. Trimming is idempotent.
func setAndValidateHost(host string) (string, error) {
	if host == "" {
		return "", &ConfigError{Err: ErrNoHost}
	}

	parsed, err := url.Parse(host)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &ConfigError{Err: fmt.Errorf("%w: %q", ErrInvalidHost, host)}
	}

	return strings.TrimRight(host, "/"), nil
}

// checkHostHealth probes the host once at construction time. A failed or
// non-success response is fatal; an unexpected body only warns, since some
// deployments front the service with proxies that rewrite the root route.
func checkHostHealth(client *http.Client, hostname string, log *logger.Logger) error {
	resp, err := client.Get(hostname)
	if err != nil {
		return &ConfigError{Err: fmt.Errorf("host %s cannot be validated: %w", hostname, err)}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ConfigError{Err: fmt.Errorf("host %s cannot be validated, response status %d: %s",
			hostname, resp.StatusCode, string(body))}
	}

	if string(body) != healthCheckMessage {
		log.Warn("host returned an unexpected health check body; it may be unhealthy and unable to serve requests", nil,
			map[string]interface{}{
				"host": hostname,
				"body": string(body),
			})
	}
	return nil
}

// pairInsertDocuments pairs embeddings with metadata by index into insert
// documents. The pairing policy is explicit: truncate to the shorter input
// and warn exactly once when the lengths differ. Callers depend on the
// truncation, so it must never become an error.
func pairInsertDocuments(embeddings []Vector, metadatas []map[string]any, log *logger.Logger) []InsertDocument {
	if len(embeddings) != len(metadatas) {
		log.Warn(embeddingMetadataMismatchWarning, nil, map[string]interface{}{
			"embeddings": len(embeddings),
			"metadatas":  len(metadatas),
		})
	}

	n := min(len(embeddings), len(metadatas))
	documents := make([]InsertDocument, 0, n)
	for i := 0; i < n; i++ {
		embedding := embeddings[i]
		documents = append(documents, InsertDocument{
			Embedding: &embedding,
			Metadata:  metadatas[i],
		})
	}
	return documents
}

// pairUpdateDocuments is the three-way analogue of pairInsertDocuments for
// parallel id, embedding and metadata columns. Same policy: pair by index,
// truncate to the shortest, warn once.
func pairUpdateDocuments(ids []string, embeddings []Vector, metadatas []map[string]any, log *logger.Logger) []UpdateDocument {
	if len(ids) != len(embeddings) || len(ids) != len(metadatas) {
		log.Warn(embeddingMetadataMismatchWarning, nil, map[string]interface{}{
			"ids":        len(ids),
			"embeddings": len(embeddings),
			"metadatas":  len(metadatas),
		})
	}

	n := min(len(ids), min(len(embeddings), len(metadatas)))
	documents := make([]UpdateDocument, 0, n)
	for i := 0; i < n; i++ {
		embedding := embeddings[i]
		documents = append(documents, UpdateDocument{
			ID:        ids[i],
			Embedding: &embedding,
			Metadata:  metadatas[i],
		})
	}
	return documents
}
