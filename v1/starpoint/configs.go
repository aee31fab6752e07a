package starpoint

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Default service hosts. Both can be overridden independently, e.g. to point
// the SDK at a self-hosted deployment or a local stub.
const (
	// WriterURL is the default host for document and collection writes.
	WriterURL = "https://writer.starpoint.ai"

	// ReaderURL is the default host for queries and schema inference.
	ReaderURL = "https://reader.starpoint.ai"
)

const defaultHTTPTimeout = 30 * time.Second

// Config holds the settings shared by the Writer, Reader and Client
// constructors. Everything is fixed at construction; clients hold no other
// mutable state.
//
// Example:
//
//	cfg := starpoint.NewConfig().
//	    WithAPIKey(key).
//	    WithWriterHost("https://writer.internal.example.com")
//	client, err := starpoint.NewClient(cfg, log)
type Config struct {
	// APIKey authenticates every request via the x-starpoint-key header.
	APIKey uuid.UUID `yaml:"api_key" env:"STARPOINT_API_KEY"`

	// WriterHost overrides the default writer service URL.
	WriterHost string `yaml:"writer_host" env:"STARPOINT_WRITER_HOST"`

	// ReaderHost overrides the default reader service URL.
	ReaderHost string `yaml:"reader_host" env:"STARPOINT_READER_HOST"`

	// EmbeddingHost overrides the default embedding service URL used by
	// the v1/embedding client.
	EmbeddingHost string `yaml:"embedding_host" env:"STARPOINT_EMBEDDING_HOST"`

	// HTTPTimeout bounds each request. Defaults to 30 seconds.
	HTTPTimeout time.Duration `yaml:"http_timeout" env:"STARPOINT_HTTP_TIMEOUT_SECONDS"`

	// SkipHealthCheck disables the construction-time liveness probe
	// against each configured host.
	SkipHealthCheck bool `yaml:"skip_health_check" env:"STARPOINT_SKIP_HEALTH_CHECK"`

	// HTTPClient replaces the default HTTP client, e.g. to install a
	// custom transport. When nil a client with HTTPTimeout is used.
	HTTPClient *http.Client `yaml:"-"`

	// Metrics receives a counter increment and a duration observation per
	// request when set. *metrics.Metrics satisfies this.
	Metrics MetricsCollector `yaml:"-"`

	// Tracer starts one span per request when set. *tracer.Tracer
	// satisfies this.
	Tracer Tracer `yaml:"-"`
}

// NewConfig reads the client configuration from environment variables and
// fills in defaults.
func NewConfig() *Config {
	timeout := defaultHTTPTimeout
	if v := os.Getenv("STARPOINT_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	var apiKey uuid.UUID
	if v := os.Getenv("STARPOINT_API_KEY"); v != "" {
		if parsed, err := uuid.Parse(v); err == nil {
			apiKey = parsed
		}
	}

	return &Config{
		APIKey:          apiKey,
		WriterHost:      os.Getenv("STARPOINT_WRITER_HOST"),
		ReaderHost:      os.Getenv("STARPOINT_READER_HOST"),
		EmbeddingHost:   os.Getenv("STARPOINT_EMBEDDING_HOST"),
		HTTPTimeout:     timeout,
		SkipHealthCheck: os.Getenv("STARPOINT_SKIP_HEALTH_CHECK") == "true",
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.APIKey == uuid.Nil {
		return &ConfigError{Err: ErrNoAPIKey}
	}
	return nil
}

// Builder-style helpers

func (c *Config) WithAPIKey(key uuid.UUID) *Config {
	c.APIKey = key
	return c
}

func (c *Config) WithWriterHost(host string) *Config {
	c.WriterHost = host
	return c
}

func (c *Config) WithReaderHost(host string) *Config {
	c.ReaderHost = host
	return c
}

func (c *Config) WithEmbeddingHost(host string) *Config {
	c.EmbeddingHost = host
	return c
}

func (c *Config) WithHTTPTimeout(d time.Duration) *Config {
	c.HTTPTimeout = d
	return c
}

func (c *Config) WithHealthCheckDisabled() *Config {
	c.SkipHealthCheck = true
	return c
}

func (c *Config) WithHTTPClient(client *http.Client) *Config {
	c.HTTPClient = client
	return c
}

func (c *Config) WithMetrics(m MetricsCollector) *Config {
	c.Metrics = m
	return c
}

func (c *Config) WithTracer(t Tracer) *Config {
	c.Tracer = t
	return c
}

// httpClient resolves the HTTP client to use for a transport.
func (c *Config) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	timeout := c.HTTPTimeout
	if timeout == 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}
