package schema

import (
	"net/url"
	"strings"

	// Packages
	llm "github.com/mutablelogic/go-llm-agent"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// AgentConfig is the configuration of a single agent. It is copied into the
// agent on construction and never changed afterwards.
type AgentConfig struct {
	Model    string `json:"model" yaml:"model"`
	APIKey   string `json:"api_key,omitempty" yaml:"api_key"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate returns ErrConfiguration for the first missing or invalid field
func (c AgentConfig) Validate() error {
	if c.Model == "" {
		return llm.ErrConfiguration.With("model is required")
	}
	if c.APIKey == "" {
		return llm.ErrConfiguration.With("api key is required")
	}
	if c.Endpoint == "" {
		return llm.ErrConfiguration.With("endpoint is required")
	}
	if u, err := url.Parse(c.Endpoint); err != nil {
		return llm.ErrConfiguration.Withf("endpoint %q: %v", c.Endpoint, err)
	} else if u.Scheme != "http" && u.Scheme != "https" {
		return llm.ErrConfiguration.Withf("endpoint %q: scheme must be http or https", c.Endpoint)
	} else if u.Host == "" {
		return llm.ErrConfiguration.Withf("endpoint %q: missing host", c.Endpoint)
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

// String returns the configuration with the credential redacted
func (c AgentConfig) String() string {
	if c.APIKey != "" {
		c.APIKey = redact(c.APIKey)
	}
	return types.Stringify(c)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// redact keeps the first four characters of a credential
func redact(key string) string {
	const keep = 4
	if len(key) <= keep {
		return strings.Repeat("*", len(key))
	}
	return key[:keep] + strings.Repeat("*", len(key)-keep)
}
