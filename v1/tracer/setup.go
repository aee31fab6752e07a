package tracer

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/starpointai/starpoint-go/v1/logger"
)

// Config holds the tracer settings.
type Config struct {
	// ServiceName identifies this application in exported traces.
	ServiceName string `yaml:"service_name" env:"STARPOINT_SERVICE_NAME"`

	// AppEnv is the deployment environment tag, e.g. "production".
	AppEnv string `yaml:"app_env" env:"STARPOINT_APP_ENV"`

	// EnableExport enables the OTLP HTTP exporter. Endpoint configuration
	// follows the standard OTEL_EXPORTER_OTLP_* environment variables.
	EnableExport bool `yaml:"enable_export" env:"STARPOINT_TRACE_EXPORT"`
}

// NewConfig reads the tracer configuration from environment variables.
func NewConfig() Config {
	service := os.Getenv("STARPOINT_SERVICE_NAME")
	if service == "" {
		service = "starpoint-go"
	}

	return Config{
		ServiceName:  service,
		AppEnv:       os.Getenv("STARPOINT_APP_ENV"),
		EnableExport: os.Getenv("STARPOINT_TRACE_EXPORT") == "true",
	}
}

// Tracer provides a simplified API for distributed tracing with OpenTelemetry.
// It wraps the OpenTelemetry TracerProvider and provides convenient methods
// for creating spans and recording errors on them.
//
// The Tracer is designed to be thread-safe and can be shared across goroutines.
type Tracer struct {
	tracer *trace.TracerProvider
	logger *logger.Logger
}

// NewClient creates and initializes a new Tracer instance.
//
// If trace export is enabled in the configuration, this function sets up an
// OTLP HTTP exporter that sends traces to the configured endpoint. If the
// exporter fails to initialize it logs a fatal error.
//
// Example:
//
//	tr := tracer.NewClient(tracer.Config{
//	    ServiceName:  "ingest-worker",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	}, log)
//
//	ctx, span := tr.StartSpan(ctx, "build-embeddings")
//	defer span.End()
func NewClient(cfg Config, log *logger.Logger) *Tracer {
	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		client := otlptracehttp.NewClient()
		exporter, err := otlptrace.New(context.Background(), client)
		if err != nil {
			log.Fatal("cannot initiate tracer", err, nil)
			return nil
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return &Tracer{tracer: tp, logger: log}
}
