package dataframe

import (
	"context"
	"fmt"

	"github.com/starpointai/starpoint-go/v1/logger"
	"github.com/starpointai/starpoint-go/v1/starpoint"
)

// Default column names looked up in a frame.
const (
	DefaultEmbeddingColumn = "embedding"
	DefaultIDColumn        = "id"
)

// Option customizes how a frame is mapped onto columnar operations.
type Option func(*options)

type options struct {
	embeddingColumn string
	idColumn        string
	exclude         []string
}

// WithEmbeddingColumn overrides the column read as the embedding
// (DefaultEmbeddingColumn when unset).
func WithEmbeddingColumn(name string) Option {
	return func(o *options) { o.embeddingColumn = name }
}

// WithIDColumn overrides the column read as the document id for updates and
// deletes (DefaultIDColumn when unset).
func WithIDColumn(name string) Option {
	return func(o *options) { o.idColumn = name }
}

// WithExcludedColumns drops the named columns from the per-row metadata.
// Naming a column the frame does not have is a validation error.
func WithExcludedColumns(names ...string) Option {
	return func(o *options) { o.exclude = append(o.exclude, names...) }
}

func applyOptions(opts []Option) options {
	o := options{
		embeddingColumn: DefaultEmbeddingColumn,
		idColumn:        DefaultIDColumn,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Client routes tabular data into a Starpoint collection. Each row becomes
// one document: the embedding column supplies the vector, and every other
// column contributes one entry to that row's flat metadata map.
type Client struct {
	store *starpoint.Client
	log   *logger.Logger
}

// NewClient constructs the adapter around a Starpoint client.
func NewClient(store *starpoint.Client, log *logger.Logger) *Client {
	if log == nil {
		log = logger.NewNop()
	}
	return &Client{
		store: store,
		log:   log,
	}
}

// InsertFrame inserts every row of the frame into the referenced collection
// via a columnar insert.
func (c *Client) InsertFrame(ctx context.Context, f *Frame, ref starpoint.CollectionRef, opts ...Option) (map[string]any, error) {
	o := applyOptions(opts)

	embeddings, metadatas, err := extractColumns(f, o, nil)
	if err != nil {
		return nil, err
	}

	return c.store.ColumnInsert(ctx, ref, embeddings, metadatas)
}

// UpdateFrame updates every row of the frame in the referenced collection
// via a columnar update. The frame must carry the id column.
func (c *Client) UpdateFrame(ctx context.Context, f *Frame, ref starpoint.CollectionRef, opts ...Option) (map[string]any, error) {
	o := applyOptions(opts)

	ids, err := extractIDs(f, o.idColumn)
	if err != nil {
		return nil, err
	}

	// The id column identifies the documents; it is not metadata.
	embeddings, metadatas, err := extractColumns(f, o, []string{o.idColumn})
	if err != nil {
		return nil, err
	}

	return c.store.ColumnUpdate(ctx, ref, ids, embeddings, metadatas)
}

// DeleteFrame deletes the documents named by the frame's id column from the
// referenced collection.
func (c *Client) DeleteFrame(ctx context.Context, f *Frame, ref starpoint.CollectionRef, opts ...Option) (map[string]any, error) {
	o := applyOptions(opts)

	if len(f.columns) == 0 {
		return nil, &starpoint.ValidationError{Err: fmt.Errorf("dataframe has no columns")}
	}

	ids, err := extractIDs(f, o.idColumn)
	if err != nil {
		return nil, err
	}

	return c.store.Delete(ctx, ref, ids)
}

// extractColumns splits a frame into its embedding column and one metadata
// map per row built from every remaining column, minus exclusions.
func extractColumns(f *Frame, o options, alsoExclude []string) ([]starpoint.Vector, []map[string]any, error) {
	if len(f.columns) == 0 {
		return nil, nil, &starpoint.ValidationError{Err: fmt.Errorf("dataframe has no columns")}
	}

	for _, name := range o.exclude {
		if !f.HasColumn(name) {
			return nil, nil, &starpoint.ValidationError{Err: fmt.Errorf("excluded column %q does not exist in the dataframe", name)}
		}
	}

	embeddingIdx, ok := f.index[o.embeddingColumn]
	if !ok {
		return nil, nil, &starpoint.ValidationError{Err: fmt.Errorf("missing expected column %q", o.embeddingColumn)}
	}

	excluded := make(map[string]bool, len(o.exclude)+len(alsoExclude)+1)
	excluded[o.embeddingColumn] = true
	for _, name := range o.exclude {
		excluded[name] = true
	}
	for _, name := range alsoExclude {
		excluded[name] = true
	}

	embeddings := make([]starpoint.Vector, 0, len(f.rows))
	metadatas := make([]map[string]any, 0, len(f.rows))

	for rowIdx, row := range f.rows {
		vector, err := toVector(row[embeddingIdx])
		if err != nil {
			return nil, nil, &starpoint.ValidationError{
				Err: fmt.Errorf("row %d, column %q: %w", rowIdx, o.embeddingColumn, err),
			}
		}

		metadata := make(map[string]any)
		for colIdx, name := range f.columns {
			if excluded[name] {
				continue
			}
			metadata[name] = row[colIdx]
		}

		embeddings = append(embeddings, vector)
		metadatas = append(metadatas, metadata)
	}

	return embeddings, metadatas, nil
}

// extractIDs reads the id column as strings.
func extractIDs(f *Frame, idColumn string) ([]string, error) {
	values, ok := f.Column(idColumn)
	if !ok {
		return nil, &starpoint.ValidationError{Err: fmt.Errorf("missing expected column %q", idColumn)}
	}

	ids := make([]string, 0, len(values))
	for rowIdx, value := range values {
		id, ok := value.(string)
		if !ok {
			return nil, &starpoint.ValidationError{
				Err: fmt.Errorf("row %d, column %q: expected a string id, got %T", rowIdx, idColumn, value),
			}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// toVector converts an embedding cell. Cells may hold a starpoint.Vector or
// raw float slices.
func toVector(cell any) (starpoint.Vector, error) {
	switch v := cell.(type) {
	case starpoint.Vector:
		return v, nil
	case []float32:
		return starpoint.NewVector(v), nil
	case []float64:
		values := make([]float32, len(v))
		for i, f := range v {
			values[i] = float32(f)
		}
		return starpoint.NewVector(values), nil
	default:
		return starpoint.Vector{}, fmt.Errorf("expected an embedding vector, got %T", cell)
	}
}
