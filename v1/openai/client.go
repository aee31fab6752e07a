package openai

import (
	"context"
	"sort"

	openaiapi "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/starpointai/starpoint-go/v1/logger"
	"github.com/starpointai/starpoint-go/v1/starpoint"
)

// DefaultModel is used when BuildAndInsertEmbeddings is called with an empty
// model.
const DefaultModel = "text-embedding-ada-002"

const noEmbeddingDataWarning = "no embedding data found in the response from openai; nothing will be written to starpoint"

// EmbeddingsService is the slice of the OpenAI SDK the adapter calls.
// Satisfied by &openaiapi.Client{}.Embeddings; tests substitute a stub.
type EmbeddingsService interface {
	New(ctx context.Context, body openaiapi.EmbeddingNewParams, opts ...option.RequestOption) (*openaiapi.CreateEmbeddingResponse, error)
}

// Client generates embeddings with the OpenAI API and writes the results
// into Starpoint. The provider call and the vector store write are bridged
// so that the provider's response is always surfaced to the caller, whatever
// happens to the write.
type Client struct {
	embeddings EmbeddingsService
	store      *starpoint.Client
	log        *logger.Logger
}

// Response combines the provider response with the outcome of the Starpoint
// write. Starpoint is nil when the provider returned no embedding data, and
// carries an "error" entry when the write failed.
type Response struct {
	OpenAI    *openaiapi.CreateEmbeddingResponse `json:"openai_response"`
	Starpoint map[string]any                     `json:"starpoint_response"`
}

// NewClient constructs the adapter around a Starpoint client. The config
// must carry exactly one credential source.
func NewClient(cfg *Config, store *starpoint.Client, log *logger.Logger) (*Client, error) {
	if log == nil {
		log = logger.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	key, err := cfg.resolveAPIKey()
	if err != nil {
		return nil, err
	}

	opts := []option.RequestOption{
		option.WithAPIKey(key),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := openaiapi.NewClient(opts...)

	return &Client{
		embeddings: &client.Embeddings,
		store:      store,
		log:        log,
	}, nil
}

// BuildAndInsertEmbeddings embeds inputData with the given model and inserts
// the resulting vectors into the referenced collection via a columnar
// insert.
//
// When metadatas is nil, per-item metadata is derived from the raw input as
// {"input": text}. The provider may return embeddings out of order, so they
// are sorted by their declared index before the write to restore request
// order. The user string is forwarded to OpenAI for abuse monitoring when
// non-empty.
//
// The returned Response always carries the provider response. A failed
// Starpoint write is logged and folded into Response.Starpoint as an "error"
// entry rather than propagated, since the embeddings were already paid for.
func (c *Client) BuildAndInsertEmbeddings(ctx context.Context, model string, inputData []string, metadatas []map[string]any, ref starpoint.CollectionRef, user string) (*Response, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	if model == "" {
		model = DefaultModel
	}

	params := openaiapi.EmbeddingNewParams{
		Model:          model,
		Input:          openaiapi.EmbeddingNewParamsInputUnion{OfArrayOfStrings: inputData},
		EncodingFormat: openaiapi.EmbeddingNewParamsEncodingFormatFloat,
	}
	if user != "" {
		params.User = openaiapi.String(user)
	}

	resp, err := c.embeddings.New(ctx, params)
	if err != nil {
		return nil, err
	}

	if len(resp.Data) == 0 {
		c.log.Warn(noEmbeddingDataWarning, nil, nil)
		return &Response{OpenAI: resp, Starpoint: nil}, nil
	}

	if metadatas == nil {
		c.log.Info("no metadata provided, deriving metadata from the input data", nil, nil)
		metadatas = make([]map[string]any, 0, len(inputData))
		for _, text := range inputData {
			metadatas = append(metadatas, map[string]any{"input": text})
		}
	}

	data := make([]openaiapi.Embedding, len(resp.Data))
	copy(data, resp.Data)
	sort.Slice(data, func(i, j int) bool { return data[i].Index < data[j].Index })

	vectors := make([]starpoint.Vector, 0, len(data))
	for _, item := range data {
		vectors = append(vectors, starpoint.NewVector(float64sToFloat32s(item.Embedding)))
	}

	storeResp, err := c.store.ColumnInsert(ctx, ref, vectors, metadatas)
	if err != nil {
		c.log.Error("failed to load embeddings into starpoint", err, nil)
		return &Response{
			OpenAI:    resp,
			Starpoint: map[string]any{"error": err.Error()},
		}, nil
	}

	return &Response{OpenAI: resp, Starpoint: storeResp}, nil
}

func float64sToFloat32s(values []float64) []float32 {
	out := make([]float32, len(values))
	for i, v := range values {
		out[i] = float32(v)
	}
	return out
}
