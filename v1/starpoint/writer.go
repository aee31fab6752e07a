package starpoint

import (
	"context"
	"net/http"

	"github.com/starpointai/starpoint-go/v1/logger"
)

// Endpoint paths served by the writer host.
const (
	documentsPath   = "/api/v1/documents"
	collectionsPath = "/api/v1/collections"
)

// Writer issues document and collection mutations. If reading and writing do
// not need to be separated, use Client instead.
type Writer struct {
	transport *Transport
	log       *logger.Logger
}

// NewWriter constructs a Writer bound to the configured writer host
// (WriterURL unless overridden).
func NewWriter(cfg *Config, log *logger.Logger) (*Writer, error) {
	if log == nil {
		log = logger.NewNop()
	}

	host := cfg.WriterHost
	if host == "" {
		host = WriterURL
	}

	transport, err := NewTransport(host, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Writer{
		transport: transport,
		log:       log,
	}, nil
}

// Host returns the validated writer host.
func (w *Writer) Host() string {
	return w.transport.Host()
}

// Delete removes documents from an existing collection by id.
func (w *Writer) Delete(ctx context.Context, ref CollectionRef, documentIDs []string) (map[string]any, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	return w.transport.Do(ctx, http.MethodDelete, documentsPath, documentsRequest{
		CollectionID:   ref.idPtr(),
		CollectionName: ref.namePtr(),
		Documents:      documentIDs,
	})
}

// Insert adds documents to an existing collection.
func (w *Writer) Insert(ctx context.Context, ref CollectionRef, documents []InsertDocument) (map[string]any, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	return w.transport.Do(ctx, http.MethodPost, documentsPath, documentsRequest{
		CollectionID:   ref.idPtr(),
		CollectionName: ref.namePtr(),
		Documents:      documents,
	})
}

// ColumnInsert inserts documents expressed as parallel embedding and metadata
// columns. The columns are paired by index in order; when their lengths
// differ the pairing truncates to the shorter column and warns once.
func (w *Writer) ColumnInsert(ctx context.Context, ref CollectionRef, embeddings []Vector, metadatas []map[string]any) (map[string]any, error) {
	documents := pairInsertDocuments(embeddings, metadatas, w.log)
	return w.Insert(ctx, ref, documents)
}

// Update updates documents in an existing collection. Each document carries
// the server-assigned id of the record it replaces.
func (w *Writer) Update(ctx context.Context, ref CollectionRef, documents []UpdateDocument) (map[string]any, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	return w.transport.Do(ctx, http.MethodPatch, documentsPath, documentsRequest{
		CollectionID:   ref.idPtr(),
		CollectionName: ref.namePtr(),
		Documents:      documents,
	})
}

// ColumnUpdate updates documents expressed as parallel id, embedding and
// metadata columns, with the same pair-by-index, truncate-to-shortest
// semantics as ColumnInsert.
func (w *Writer) ColumnUpdate(ctx context.Context, ref CollectionRef, ids []string, embeddings []Vector, metadatas []map[string]any) (map[string]any, error) {
	documents := pairUpdateDocuments(ids, embeddings, metadatas, w.log)
	return w.Update(ctx, ref, documents)
}

// CreateCollection creates a collection with the given name and vector
// dimensionality. Dimensionality must be greater than 0.
func (w *Writer) CreateCollection(ctx context.Context, name string, dimensionality int) (map[string]any, error) {
	if dimensionality <= 0 {
		return nil, &ValidationError{Err: ErrInvalidDimensionality}
	}

	return w.transport.Do(ctx, http.MethodPost, collectionsPath, createCollectionRequest{
		Name:           name,
		Dimensionality: dimensionality,
	})
}

// DeleteCollection deletes a collection by id.
func (w *Writer) DeleteCollection(ctx context.Context, collectionID string) (map[string]any, error) {
	return w.transport.Do(ctx, http.MethodDelete, collectionsPath, deleteCollectionRequest{
		CollectionID: collectionID,
	})
}
