package provider

import (
	"context"
	"net/http"
	"time"

	wshttp "github.com/answerd/answerd/internal/websearch/http"
	"github.com/answerd/answerd/internal/websearch/types"
)

// Provider defines the interface for instant-answer search providers
type Provider interface {
	// Search executes a search query and returns the parsed instant answer
	Search(ctx context.Context, query string) (*types.InstantAnswer, error)

	// GetID returns the provider ID
	GetID() types.ProviderID

	// GetName returns the provider name
	GetName() string

	// Validate validates the provider configuration
	Validate() error
}

// BaseProvider provides common functionality for all providers
type BaseProvider struct {
	config     *types.ProviderConfig
	httpClient *http.Client
}

// NewBaseProvider creates a new base provider
func NewBaseProvider(config *types.ProviderConfig) *BaseProvider {
	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &BaseProvider{
		config:     config,
		httpClient: wshttp.NewHTTPClient(timeout),
	}
}

// GetID returns the provider ID
func (b *BaseProvider) GetID() types.ProviderID {
	return b.config.ID
}

// GetName returns the provider name
func (b *BaseProvider) GetName() string {
	return b.config.Name
}

// GetConfig returns the provider configuration
func (b *BaseProvider) GetConfig() *types.ProviderConfig {
	return b.config
}

// GetHTTPClient returns the HTTP client
func (b *BaseProvider) GetHTTPClient() *http.Client {
	return b.httpClient
}

// BuildDefaultHeaders builds default HTTP headers
func (b *BaseProvider) BuildDefaultHeaders() map[string]string {
	return map[string]string{
		"Accept":     "application/json",
		"User-Agent": "answerd/1.0",
	}
}

// Validate validates the provider configuration
func (b *BaseProvider) Validate() error {
	return b.config.Validate()
}
