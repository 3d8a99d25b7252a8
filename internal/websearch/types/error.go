package types

import (
	"errors"
	"fmt"
)

var (
	// Configuration errors
	ErrInvalidProviderID = errors.New("invalid provider ID")
	ErrInvalidAPIHost    = errors.New("invalid API host")

	// Search errors
	ErrInvalidQuery     = errors.New("query cannot be encoded into a request")
	ErrTransportFailure = errors.New("search transport failure")
	ErrParseFailure     = errors.New("malformed search response")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider ProviderID
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s (%v)", e.Provider, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Provider, e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
