package openai

import (
	"errors"
	"os"
	"strings"

	"github.com/starpointai/starpoint-go/v1/starpoint"
)

// Sentinel errors for credential configuration.
var (
	// ErrNoAPIKeySource indicates that neither a literal key nor a key
	// file path was provided.
	ErrNoAPIKeySource = errors.New("provide either an openai api key or a path to a file containing one")

	// ErrMultipleAPIKeySources indicates that both a literal key and a key
	// file path were provided; exactly one is accepted.
	ErrMultipleAPIKeySources = errors.New("provide either an openai api key or a key file path, not both")

	// ErrKeyPathNotFile indicates the key file path does not point at a
	// regular file.
	ErrKeyPathNotFile = errors.New("the provided openai api key path is not a regular file")
)

// Config holds the credentials for the OpenAI embeddings API. Exactly one of
// APIKey and APIKeyPath must be set.
type Config struct {
	// APIKey is a literal OpenAI API key.
	APIKey string `yaml:"api_key" env:"OPENAI_API_KEY"`

	// APIKeyPath is the path of a file whose contents are the API key.
	APIKeyPath string `yaml:"api_key_path" env:"OPENAI_API_KEY_PATH"`

	// BaseURL overrides the OpenAI endpoint, e.g. for an
	// OpenAI-compatible proxy.
	BaseURL string `yaml:"base_url" env:"OPENAI_BASE_URL"`
}

// Validate enforces the one-of credential contract and checks that a
// configured key path is a regular file.
func (c *Config) Validate() error {
	switch {
	case c.APIKey == "" && c.APIKeyPath == "":
		return &starpoint.ConfigError{Err: ErrNoAPIKeySource}
	case c.APIKey != "" && c.APIKeyPath != "":
		return &starpoint.ConfigError{Err: ErrMultipleAPIKeySources}
	}

	if c.APIKeyPath != "" {
		info, err := os.Stat(c.APIKeyPath)
		if err != nil || !info.Mode().IsRegular() {
			return &starpoint.ConfigError{Err: ErrKeyPathNotFile}
		}
	}
	return nil
}

// resolveAPIKey returns the literal key, reading the key file when the
// credential was given as a path.
func (c *Config) resolveAPIKey() (string, error) {
	if c.APIKey != "" {
		return c.APIKey, nil
	}

	data, err := os.ReadFile(c.APIKeyPath)
	if err != nil {
		return "", &starpoint.ConfigError{Err: err}
	}
	return strings.TrimSpace(string(data)), nil
}
