// Package starpoint is the core client for the Starpoint vector database
// service: a thin, synchronous wrapper over its HTTP API.
//
// The package exposes three entry points. Writer issues document and
// collection mutations against the writer host, Reader issues queries and
// schema inference against the reader host, and Client composes the two
// behind a single facade. All three are bound to one API key and validate
// their hosts once, at construction.
//
//	cfg := starpoint.NewConfig().WithAPIKey(key)
//	client, err := starpoint.NewClient(cfg, log)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := client.ColumnInsert(ctx,
//	    starpoint.CollectionByName("documents"),
//	    []starpoint.Vector{starpoint.NewVector(values)},
//	    []map[string]any{{"title": "intro"}},
//	)
//
// # Collection references
//
// Every per-collection operation takes a CollectionRef, which carries either
// a collection id or a collection name. The two constructors make the
// invalid states (neither set, both set) unrepresentable; NewCollectionRef
// exists for callers that hold both as optional values and reports the two
// failure modes as distinct errors.
//
// # Error handling
//
// The SDK distinguishes three failure classes. Construction problems (bad
// host, missing key) surface as *ConfigError. Malformed input detected
// before the network call surfaces as *ValidationError. Transport failures
// are logged and returned as errors, with TLS failures logged under a fixed
// diagnostic since they usually indicate an invalid API key. A response with
// a non-success HTTP status is not an error at the Go level: it is logged
// once and the call returns an empty map, so callers inspect the result for
// API-level failures. This asymmetry is part of the public contract.
//
// # Concurrency
//
// Clients hold only immutable configuration after construction, so they are
// safe for concurrent use without any coordination by the SDK.
package starpoint
