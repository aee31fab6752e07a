package embedding

import (
	"context"
	"fmt"
	"net/http"

	"github.com/starpointai/starpoint-go/v1/logger"
	"github.com/starpointai/starpoint-go/v1/starpoint"
)

// EmbeddingURL is the default host for the embed endpoint.
const EmbeddingURL = "https://embedding.starpoint.ai"

const embedPath = "/api/v1/embed"

const textMetadataMismatchWarning = "text and metadata counts differ; " +
	"pairing by index and truncating to the shorter input, trailing elements are dropped"

// Client issues embedding requests against the Starpoint embed endpoint. It
// shares the core transport, so error handling follows the same contract as
// the Writer and Reader: transport failures return errors, non-success HTTP
// statuses return an empty result.
type Client struct {
	transport *starpoint.Transport
	log       *logger.Logger
}

// NewClient constructs a Client bound to the configured embedding host
// (EmbeddingURL unless overridden via Config.EmbeddingHost).
func NewClient(cfg *starpoint.Config, log *logger.Logger) (*Client, error) {
	if log == nil {
		log = logger.NewNop()
	}

	host := cfg.EmbeddingHost
	if host == "" {
		host = EmbeddingURL
	}

	transport, err := starpoint.NewTransport(host, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Client{
		transport: transport,
		log:       log,
	}, nil
}

// Host returns the validated embedding host.
func (c *Client) Host() string {
	return c.transport.Host()
}

// Embed creates embeddings for plain texts with no attached metadata. This
// is EmbedItems for the common case where joining metadata is unnecessary.
func (c *Client) Embed(ctx context.Context, texts []string, model Model) (map[string]any, error) {
	items := make([]TextItem, 0, len(texts))
	for _, text := range texts {
		items = append(items, TextItem{Text: text})
	}
	return c.EmbedItems(ctx, items, model)
}

// EmbedAndJoinMetadataByColumns creates embeddings for texts and joins each
// with the metadata at the same index. When the column lengths differ the
// pairing truncates to the shorter column and warns once.
func (c *Client) EmbedAndJoinMetadataByColumns(ctx context.Context, texts []string, metadatas []map[string]any, model Model) (map[string]any, error) {
	items := pairTextItems(texts, metadatas, c.log)
	return c.EmbedItems(ctx, items, model)
}

// EmbedAndJoinMetadata creates embeddings from pre-joined records. Each item
// must carry its text under embeddingKey; that entry is removed and the rest
// of the record becomes the item's metadata. The input maps are not mutated.
//
// Returns a ValidationError when items is empty or when any item lacks a
// string value under embeddingKey; the error names every offending index.
func (c *Client) EmbedAndJoinMetadata(ctx context.Context, items []map[string]any, embeddingKey string, model Model) (map[string]any, error) {
	if len(items) == 0 {
		return nil, &starpoint.ValidationError{Err: fmt.Errorf("no items provided to embed")}
	}

	var offending []int
	texts := make([]string, 0, len(items))
	metadatas := make([]map[string]any, 0, len(items))

	for i, item := range items {
		text, ok := item[embeddingKey].(string)
		if !ok {
			offending = append(offending, i)
			continue
		}

		metadata := make(map[string]any, len(item)-1)
		for key, value := range item {
			if key == embeddingKey {
				continue
			}
			metadata[key] = value
		}

		texts = append(texts, text)
		metadatas = append(metadatas, metadata)
	}

	if len(offending) > 0 {
		return nil, &starpoint.ValidationError{
			Err: fmt.Errorf("items at indices %v have no text under embedding key %q", offending, embeddingKey),
		}
	}

	return c.EmbedAndJoinMetadataByColumns(ctx, texts, metadatas, model)
}

// EmbedItems embeds text items, returning each text with its metadata and
// computed embedding.
func (c *Client) EmbedItems(ctx context.Context, items []TextItem, model Model) (map[string]any, error) {
	return c.transport.Do(ctx, http.MethodPost, embedPath, embedRequest{
		Items: items,
		Model: model,
	})
}

// pairTextItems pairs texts with metadata by index into text items, with the
// same explicit policy as the columnar document writers: truncate to the
// shorter input and warn exactly once when the lengths differ.
func pairTextItems(texts []string, metadatas []map[string]any, log *logger.Logger) []TextItem {
	if len(texts) != len(metadatas) {
		log.Warn(textMetadataMismatchWarning, nil, map[string]interface{}{
			"texts":     len(texts),
			"metadatas": len(metadatas),
		})
	}

	n := min(len(texts), len(metadatas))
	items := make([]TextItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, TextItem{
			Text:     texts[i],
			Metadata: metadatas[i],
		})
	}
	return items
}
