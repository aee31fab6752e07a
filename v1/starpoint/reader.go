package starpoint

import (
	"context"
	"net/http"

	"github.com/starpointai/starpoint-go/v1/logger"
)

// Endpoint paths served by the reader host.
const (
	queryPath       = "/api/v1/query"
	inferSchemaPath = "/api/v1/infer_schema"
)

// Reader issues queries and schema inference against collections. If reading
// and writing do not need to be separated, use Client instead.
type Reader struct {
	transport *Transport
	log       *logger.Logger
}

// NewReader constructs a Reader bound to the configured reader host
// (ReaderURL unless overridden).
func NewReader(cfg *Config, log *logger.Logger) (*Reader, error) {
	if log == nil {
		log = logger.NewNop()
	}

	host := cfg.ReaderHost
	if host == "" {
		host = ReaderURL
	}

	transport, err := NewTransport(host, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Reader{
		transport: transport,
		log:       log,
	}, nil
}

// Host returns the validated reader host.
func (r *Reader) Host() string {
	return r.transport.Host()
}

// Query runs a query against a collection, by SQL, by embedding similarity,
// or both. Unset options are sent as explicit nulls.
func (r *Reader) Query(ctx context.Context, ref CollectionRef, opts *QueryOptions) (map[string]any, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	body := queryRequest{
		CollectionID:   ref.idPtr(),
		CollectionName: ref.namePtr(),
	}
	if opts != nil {
		if opts.SQL != "" {
			sql := opts.SQL
			body.SQL = &sql
		}
		body.QueryEmbedding = opts.QueryEmbedding
		body.Params = opts.Params
	}

	return r.transport.Do(ctx, http.MethodPost, queryPath, body)
}

// InferSchema infers the schema of a collection, reporting each metadata
// column name with its inferred type.
func (r *Reader) InferSchema(ctx context.Context, ref CollectionRef) (map[string]any, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	return r.transport.Do(ctx, http.MethodPost, inferSchemaPath, inferSchemaRequest{
		CollectionID:   ref.idPtr(),
		CollectionName: ref.namePtr(),
	})
}
