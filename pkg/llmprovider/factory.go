package llmprovider

import (
	"fmt"
	"net/http"

	"intent-coordinator/pkg/openai"
)

// ProviderConfig holds configuration for the LLM provider
type ProviderConfig struct {
	Name              string
	APIKey            string
	BaseURL           string
	Model             string
	RequestsPerSecond float64
	HTTPClient        *http.Client
}

// Configured reports whether enough is set to build a provider
func (c ProviderConfig) Configured() bool {
	return c.APIKey != "" && c.Model != ""
}

// NewProvider creates a concrete provider instance based on the provider config
func NewProvider(cfg ProviderConfig) (Provider, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("%w: provider %q needs api key and model", ErrProviderNotConfigured, cfg.Name)
	}

	name := cfg.Name
	if name == "" {
		name = "openai"
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = openai.BaseURLForProvider(name)
		if baseURL == "" {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
		}
	}

	client, err := openai.New(openai.Config{
		APIKey:            cfg.APIKey,
		Model:             cfg.Model,
		BaseURL:           baseURL,
		HTTPClient:        cfg.HTTPClient,
		RequestsPerSecond: cfg.RequestsPerSecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", name, err)
	}
	return NewOpenAIAdapter(name, client), nil
}
