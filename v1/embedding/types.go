package embedding

// Model selects the embedding model hosted by the Starpoint embed endpoint.
type Model string

// Models currently served by the embed endpoint.
const (
	ModelMiniLM Model = "MiniLm"
)

// TextItem pairs a text to embed with the metadata that should accompany the
// resulting document. Metadata may be nil.
type TextItem struct {
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata"`
}

type embedRequest struct {
	Items []TextItem `json:"items"`
	Model Model      `json:"model"`
}
