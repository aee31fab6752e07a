package starpoint

import "errors"

// Sentinel errors returned (wrapped in ConfigError or ValidationError) by
// constructors and request validation.
var (
	// ErrNoHost indicates an empty host string was supplied.
	ErrNoHost = errors.New("no host value provided, a host must be provided")

	// ErrInvalidHost indicates the host string is not a valid absolute URL.
	ErrInvalidHost = errors.New("host is not a valid url")

	// ErrNoCollectionIdentifier indicates that neither a collection id nor a
	// collection name was provided.
	ErrNoCollectionIdentifier = errors.New("provide a value for either the collection id or the collection name")

	// ErrMultipleCollectionIdentifiers indicates that both a collection id
	// and a collection name were provided; requests accept exactly one.
	ErrMultipleCollectionIdentifiers = errors.New("provide either the collection id or the collection name, not both")

	// ErrInvalidDimensionality indicates a non-positive collection dimensionality.
	ErrInvalidDimensionality = errors.New("dimensionality must be greater than 0")

	// ErrNoAPIKey indicates a missing API key.
	ErrNoAPIKey = errors.New("no api key provided")
)

// ConfigError reports an invalid construction-time configuration: a bad host,
// a missing credential, or an unusable credential file. It is fatal to the
// construction call that raised it.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return "starpoint: invalid configuration: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ValidationError reports malformed request input detected before any network
// call: a missing or duplicate collection identifier, a non-positive
// dimensionality, or a malformed batch.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "starpoint: invalid request: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
