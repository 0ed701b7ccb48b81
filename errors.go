package vibe

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a catalog or configuration failed validation.
	ErrValidation = errors.New("validation error")

	// ErrCredentialMissing indicates no API key is configured for the model
	// provider.
	ErrCredentialMissing = errors.New("credential missing")

	// ErrEmptyResponse indicates the model answered without any text.
	ErrEmptyResponse = errors.New("empty response")
)
