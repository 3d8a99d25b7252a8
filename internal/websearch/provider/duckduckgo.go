package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/answerd/answerd/internal/websearch/types"
)

// DuckDuckGoProvider implements the DuckDuckGo Instant Answer API.
// The API is keyless; only the host is configurable (tests point it at a
// local server).
type DuckDuckGoProvider struct {
	*BaseProvider
}

// NewDuckDuckGoProvider creates a new DuckDuckGo provider
func NewDuckDuckGoProvider(config *types.ProviderConfig) (Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &DuckDuckGoProvider{BaseProvider: NewBaseProvider(config)}, nil
}

// Search queries the instant-answer endpoint. Exactly one GET is issued per
// call; there are no retries. Failures map to the three search error kinds:
// ErrInvalidQuery before any network I/O, ErrTransportFailure for connection
// errors and non-2xx statuses, ErrParseFailure for undecodable bodies.
func (p *DuckDuckGoProvider) Search(ctx context.Context, query string) (*types.InstantAnswer, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_html", "1")
	params.Set("skip_disambig", "1")

	apiURL := fmt.Sprintf("%s/?%s", p.config.APIHost, params.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, &types.ProviderError{
			Provider: p.GetID(),
			Code:     "INVALID_QUERY",
			Message:  "failed to build request URL",
			Err:      fmt.Errorf("%w: %v", types.ErrInvalidQuery, err),
		}
	}

	for k, v := range p.BuildDefaultHeaders() {
		httpReq.Header.Set(k, v)
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, &types.ProviderError{
			Provider: p.GetID(),
			Code:     "REQUEST_FAILED",
			Message:  "failed to execute request",
			Err:      fmt.Errorf("%w: %v", types.ErrTransportFailure, err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &types.ProviderError{
			Provider: p.GetID(),
			Code:     fmt.Sprintf("HTTP_%d", resp.StatusCode),
			Message:  string(body),
			Err:      types.ErrTransportFailure,
		}
	}

	// Unknown fields in the payload are ignored, not treated as errors.
	var answer types.InstantAnswer
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return nil, &types.ProviderError{
			Provider: p.GetID(),
			Code:     "INVALID_RESPONSE",
			Message:  "failed to decode response body",
			Err:      fmt.Errorf("%w: %v", types.ErrParseFailure, err),
		}
	}

	return &answer, nil
}
