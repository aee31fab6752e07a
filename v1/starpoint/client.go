package starpoint

import (
	"context"

	"github.com/starpointai/starpoint-go/v1/logger"
)

// Client combines a Writer and a Reader behind one facade. Both are bound to
// the same API key and to independently configurable hosts. Every method is
// a direct delegate; the facade adds no logic of its own.
type Client struct {
	writer *Writer
	reader *Reader
}

// NewClient constructs a Client from Config. It validates the config and the
// two hosts up front, so a returned Client is always usable.
func NewClient(cfg *Config, log *logger.Logger) (*Client, error) {
	writer, err := NewWriter(cfg, log)
	if err != nil {
		return nil, err
	}

	reader, err := NewReader(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Client{
		writer: writer,
		reader: reader,
	}, nil
}

// Writer returns the underlying Writer.
func (c *Client) Writer() *Writer {
	return c.writer
}

// Reader returns the underlying Reader.
func (c *Client) Reader() *Reader {
	return c.reader
}

// Delete removes documents from an existing collection. Delegates to
// Writer.Delete.
func (c *Client) Delete(ctx context.Context, ref CollectionRef, documentIDs []string) (map[string]any, error) {
	return c.writer.Delete(ctx, ref, documentIDs)
}

// Insert adds documents to an existing collection. Delegates to
// Writer.Insert.
func (c *Client) Insert(ctx context.Context, ref CollectionRef, documents []InsertDocument) (map[string]any, error) {
	return c.writer.Insert(ctx, ref, documents)
}

// ColumnInsert inserts documents expressed as parallel embedding and metadata
// columns. Delegates to Writer.ColumnInsert.
func (c *Client) ColumnInsert(ctx context.Context, ref CollectionRef, embeddings []Vector, metadatas []map[string]any) (map[string]any, error) {
	return c.writer.ColumnInsert(ctx, ref, embeddings, metadatas)
}

// Update updates documents in an existing collection. Delegates to
// Writer.Update.
func (c *Client) Update(ctx context.Context, ref CollectionRef, documents []UpdateDocument) (map[string]any, error) {
	return c.writer.Update(ctx, ref, documents)
}

// ColumnUpdate updates documents expressed as parallel id, embedding and
// metadata columns. Delegates to Writer.ColumnUpdate.
func (c *Client) ColumnUpdate(ctx context.Context, ref CollectionRef, ids []string, embeddings []Vector, metadatas []map[string]any) (map[string]any, error) {
	return c.writer.ColumnUpdate(ctx, ref, ids, embeddings, metadatas)
}

// CreateCollection creates a collection by name and dimensionality.
// Delegates to Writer.CreateCollection.
func (c *Client) CreateCollection(ctx context.Context, name string, dimensionality int) (map[string]any, error) {
	return c.writer.CreateCollection(ctx, name, dimensionality)
}

// DeleteCollection deletes a collection by id. Delegates to
// Writer.DeleteCollection.
func (c *Client) DeleteCollection(ctx context.Context, collectionID string) (map[string]any, error) {
	return c.writer.DeleteCollection(ctx, collectionID)
}

// Query queries a collection by SQL and/or embedding similarity. Delegates to
// Reader.Query.
func (c *Client) Query(ctx context.Context, ref CollectionRef, opts *QueryOptions) (map[string]any, error) {
	return c.reader.Query(ctx, ref, opts)
}

// InferSchema infers the schema of a collection. Delegates to
// Reader.InferSchema.
func (c *Client) InferSchema(ctx context.Context, ref CollectionRef) (map[string]any, error) {
	return c.reader.InferSchema(ctx, ref)
}
