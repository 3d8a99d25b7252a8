package types

type ProviderID string

const (
	ProviderDuckDuckGo ProviderID = "duckduckgo"
)

// ProviderConfig represents search provider configuration
type ProviderConfig struct {
	ID   ProviderID `json:"id" yaml:"id"`
	Name string     `json:"name" yaml:"name"`

	// API settings
	APIHost string `json:"api_host" yaml:"api_host"`

	// Optional settings
	Timeout int `json:"timeout,omitempty" yaml:"timeout,omitempty"` // seconds
}

// Validate validates the provider configuration
func (c *ProviderConfig) Validate() error {
	if c.ID == "" {
		return ErrInvalidProviderID
	}
	if c.APIHost == "" {
		return ErrInvalidAPIHost
	}
	return nil
}
