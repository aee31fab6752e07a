package starpoint

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/starpointai/starpoint-go/v1/logger"
)

// sslErrorMessage is logged when a request fails during the TLS handshake.
// An invalid API key is the usual cause when talking to the hosted service.
const sslErrorMessage = "request failed due to a TLS error; " +
	"this is likely caused by an invalid API key, check that the key is correct and still valid"

// MetricsCollector is the subset of the v1/metrics surface the transport
// reports into. Satisfied by *metrics.Metrics.
type MetricsCollector interface {
	IncrementRequests(endpoint, status string)
	RecordRequestDuration(start time.Time, endpoint string)
}

// Tracer is the subset of the v1/tracer surface the transport uses.
// Satisfied by *tracer.Tracer.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, traceSpan.Span)
	RecordErrorOnSpan(span traceSpan.Span, err error)
}

// Transport is the request engine shared by the Writer, the Reader and the
// sibling endpoint clients (v1/embedding). It binds one validated host and
// one API key, and applies the SDK's uniform error handling:
//
//   - transport-level failures (TLS handshake, connection, timeout) are
//     logged and returned as errors;
//   - non-success HTTP statuses are logged once and yield an empty result
//     with a nil error, so callers inspect the result rather than the error
//     for API-level failures;
//   - success responses are decoded as JSON into a map.
//
// A Transport is immutable after construction and safe for concurrent use.
type Transport struct {
	host       string
	apiKey     uuid.UUID
	httpClient *http.Client
	log        *logger.Logger
	metrics    MetricsCollector
	tracer     Tracer
}

// NewTransport validates the host (including the optional liveness probe) and
// returns a transport bound to it. A nil log falls back to a no-op logger.
func NewTransport(host string, cfg *Config, log *logger.Logger) (*Transport, error) {
	if log == nil {
		log = logger.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	validated, err := setAndValidateHost(host)
	if err != nil {
		return nil, err
	}

	client := cfg.httpClient()

	if !cfg.SkipHealthCheck {
		if err := checkHostHealth(client, validated, log); err != nil {
			return nil, err
		}
	}

	return &Transport{
		host:       validated,
		apiKey:     cfg.APIKey,
		httpClient: client,
		log:        log,
		metrics:    cfg.Metrics,
		tracer:     cfg.Tracer,
	}, nil
}

// Host returns the validated, trimmed host this transport is bound to.
func (t *Transport) Host() string {
	return t.host
}

// Do issues one request against path and returns the decoded JSON response.
// See the type comment for the error handling contract.
func (t *Transport) Do(ctx context.Context, method, path string, body any) (map[string]any, error) {
	var span traceSpan.Span
	if t.tracer != nil {
		ctx, span = t.tracer.StartSpan(ctx, method+" "+path)
		defer span.End()
	}
	if t.metrics != nil {
		defer t.metrics.RecordRequestDuration(time.Now(), path)
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("starpoint: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.host+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("starpoint: build request: %w", err)
	}
	req.Header = buildHeader(t.apiKey, map[string]string{
		"Content-Type": "application/json",
	})

	resp, err := t.httpClient.Do(req)
	if err != nil {
		if isTLSError(err) {
			t.log.Error(sslErrorMessage, err, nil)
		} else {
			t.log.Error("request failed", err, map[string]interface{}{
				"method": method,
				"path":   path,
			})
		}
		if span != nil {
			t.tracer.RecordErrorOnSpan(span, err)
		}
		t.observe(path, "transport_error")
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.observe(path, "transport_error")
		return nil, fmt.Errorf("starpoint: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		t.log.Error("request failed with a non-success status code", nil, map[string]interface{}{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
			"body":   string(respBody),
		})
		t.observe(path, "http_error")
		return map[string]any{}, nil
	}

	result := map[string]any{}
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &result); err != nil {
			t.observe(path, "decode_error")
			return nil, fmt.Errorf("starpoint: decode response: %w", err)
		}
	}

	t.observe(path, "success")
	return result, nil
}

func (t *Transport) observe(path, status string) {
	if t.metrics != nil {
		t.metrics.IncrementRequests(path, status)
	}
}

// isTLSError reports whether err originates from the TLS layer, so the fixed
// SSL diagnostic is only logged for handshake and certificate failures, not
// for ordinary connection errors.
func isTLSError(err error) bool {
	var recordErr tls.RecordHeaderError
	var verifyErr *tls.CertificateVerificationError
	var hostnameErr x509.HostnameError
	var authorityErr x509.UnknownAuthorityError
	var invalidErr x509.CertificateInvalidError

	switch {
	case errors.As(err, &recordErr),
		errors.As(err, &verifyErr),
		errors.As(err, &hostnameErr),
		errors.As(err, &authorityErr),
		errors.As(err, &invalidErr):
		return true
	}
	return strings.Contains(err.Error(), "tls:")
}
