// Package tracer configures OpenTelemetry tracing for SDK operations.
//
// When a Tracer is attached to the core client configuration, every Starpoint
// API call runs inside its own span named after the endpoint, with transport
// failures recorded on the span. Export is optional: without EnableExport the
// provider is a local no-op suitable for development.
package tracer
