package starpoint

// Vector is an embedding vector as stored by Starpoint. Dimensionality must
// equal len(Values); the server enforces this, the client trusts the caller.
type Vector struct {
	Values         []float32 `json:"values"`
	Dimensionality int       `json:"dimensionality"`
}

// NewVector wraps raw values into a Vector with its dimensionality filled in.
func NewVector(values []float32) Vector {
	return Vector{
		Values:         values,
		Dimensionality: len(values),
	}
}

// InsertDocument is one document of an insert request: an embedding plus an
// arbitrary metadata map. The embedding may be nil when the collection is
// used for metadata-only records.
type InsertDocument struct {
	Embedding *Vector        `json:"embedding"`
	Metadata  map[string]any `json:"metadata"`
}

// UpdateDocument is one document of an update request. The id is assigned by
// the server on insert. Embedding is optional; metadata-only updates leave it
// nil.
type UpdateDocument struct {
	ID        string         `json:"id"`
	Embedding *Vector        `json:"embedding,omitempty"`
	Metadata  map[string]any `json:"metadata"`
}

// CollectionRef identifies the collection an operation targets: either by
// server-assigned id or by name, never both. The zero value is invalid.
// Construct one with CollectionByID, CollectionByName, or NewCollectionRef.
type CollectionRef struct {
	id   string
	name string
}

// CollectionByID references a collection by its server-assigned id.
func CollectionByID(id string) CollectionRef {
	return CollectionRef{id: id}
}

// CollectionByName references a collection by its name.
func CollectionByName(name string) CollectionRef {
	return CollectionRef{name: name}
}

// NewCollectionRef builds a CollectionRef from a pair of optional
// identifiers, for callers that carry both as independently optional values.
// Exactly one of id and name must be non-empty.
func NewCollectionRef(id, name string) (CollectionRef, error) {
	switch {
	case id == "" && name == "":
		return CollectionRef{}, &ValidationError{Err: ErrNoCollectionIdentifier}
	case id != "" && name != "":
		return CollectionRef{}, &ValidationError{Err: ErrMultipleCollectionIdentifiers}
	case id != "":
		return CollectionByID(id), nil
	default:
		return CollectionByName(name), nil
	}
}

// IsZero reports whether the ref carries no identifier.
func (r CollectionRef) IsZero() bool {
	return r.id == "" && r.name == ""
}

// Validate returns a ValidationError for the zero ref. Called at the top of
// every per-collection operation before the request body is built.
func (r CollectionRef) Validate() error {
	if r.IsZero() {
		return &ValidationError{Err: ErrNoCollectionIdentifier}
	}
	return nil
}

// idPtr returns the collection id for the wire format, nil when unset.
func (r CollectionRef) idPtr() *string {
	if r.id == "" {
		return nil
	}
	id := r.id
	return &id
}

// namePtr returns the collection name for the wire format, nil when unset.
func (r CollectionRef) namePtr() *string {
	if r.name == "" {
		return nil
	}
	name := r.name
	return &name
}

// QueryOptions carries the optional parts of a query request. A nil
// *QueryOptions queries with all fields null, which the server treats as a
// plain scan of the collection.
type QueryOptions struct {
	// SQL is a raw SQL statement to run against the collection.
	SQL string

	// QueryEmbedding enables similarity search against the collection.
	QueryEmbedding *Vector

	// Params are the values for a parameterized SQL statement.
	Params []any
}

// Wire shapes. Collection identifiers are serialized as explicit nulls when
// unset, matching what the API expects.

type documentsRequest struct {
	CollectionID   *string `json:"collection_id"`
	CollectionName *string `json:"collection_name"`
	Documents      any     `json:"documents"`
}

type createCollectionRequest struct {
	Name           string `json:"name"`
	Dimensionality int    `json:"dimensionality"`
}

type deleteCollectionRequest struct {
	CollectionID string `json:"collection_id"`
}

type queryRequest struct {
	CollectionID   *string `json:"collection_id"`
	CollectionName *string `json:"collection_name"`
	QueryEmbedding *Vector `json:"query_embedding"`
	SQL            *string `json:"sql"`
	Params         []any   `json:"params"`
}

type inferSchemaRequest struct {
	CollectionID   *string `json:"collection_id"`
	CollectionName *string `json:"collection_name"`
}
