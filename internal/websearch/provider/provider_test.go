package provider

import (
	"testing"
	"time"

	"github.com/answerd/answerd/internal/websearch/types"

	"github.com/stretchr/testify/assert"
)

func TestNewBaseProvider(t *testing.T) {
	config := &types.ProviderConfig{
		ID:      types.ProviderDuckDuckGo,
		Name:    "DuckDuckGo",
		APIHost: "https://api.duckduckgo.com",
		Timeout: 30,
	}

	base := NewBaseProvider(config)
	assert.NotNil(t, base)
	assert.Equal(t, types.ProviderDuckDuckGo, base.GetID())
	assert.Equal(t, "DuckDuckGo", base.GetName())
	assert.Equal(t, 30*time.Second, base.GetHTTPClient().Timeout)
}

func TestNewBaseProvider_DefaultTimeout(t *testing.T) {
	base := NewBaseProvider(&types.ProviderConfig{
		ID:      types.ProviderDuckDuckGo,
		Name:    "DuckDuckGo",
		APIHost: "https://api.duckduckgo.com",
	})
	assert.Equal(t, 10*time.Second, base.GetHTTPClient().Timeout)
}

func TestProviderConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *types.ProviderConfig
		wantErr error
	}{
		{
			name: "valid config",
			config: &types.ProviderConfig{
				ID:      types.ProviderDuckDuckGo,
				Name:    "DuckDuckGo",
				APIHost: "https://api.duckduckgo.com",
			},
			wantErr: nil,
		},
		{
			name: "missing provider ID",
			config: &types.ProviderConfig{
				Name:    "DuckDuckGo",
				APIHost: "https://api.duckduckgo.com",
			},
			wantErr: types.ErrInvalidProviderID,
		},
		{
			name: "missing API host",
			config: &types.ProviderConfig{
				ID:   types.ProviderDuckDuckGo,
				Name: "DuckDuckGo",
			},
			wantErr: types.ErrInvalidAPIHost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
