package metrics

import "os"

// Config controls the metrics registry and the optional scrape endpoint.
type Config struct {
	// Address is the listen address for the /metrics endpoint, e.g. ":9090".
	// When empty, no HTTP server is configured and the registry is
	// collect-only; this is the common mode for SDK consumers that already
	// run their own scrape endpoint.
	Address string `yaml:"address" env:"STARPOINT_METRICS_ADDRESS"`

	// EnableDefaultCollectors registers Go runtime, process and build info
	// collectors in addition to the SDK request metrics.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"STARPOINT_METRICS_DEFAULT_COLLECTORS"`

	// ServiceName is applied to every metric as a constant `service` label.
	ServiceName string `yaml:"service_name" env:"STARPOINT_SERVICE_NAME"`
}

// NewConfig reads the metrics configuration from environment variables.
func NewConfig() Config {
	service := os.Getenv("STARPOINT_SERVICE_NAME")
	if service == "" {
		service = "starpoint-go"
	}

	return Config{
		Address:                 os.Getenv("STARPOINT_METRICS_ADDRESS"),
		EnableDefaultCollectors: os.Getenv("STARPOINT_METRICS_DEFAULT_COLLECTORS") == "true",
		ServiceName:             service,
	}
}
