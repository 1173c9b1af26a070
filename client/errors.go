package client

import "errors"

// Sentinel errors for client operations.
var (
	// ErrAPI indicates the Anthropic API call failed. All transport and API
	// level failures wrap this, regardless of send variant.
	ErrAPI = errors.New("anthropic API error")

	// ErrNoAPIKey indicates no API key is configured.
	ErrNoAPIKey = errors.New("no API key configured")
)
