package services

import "errors"

var (
	// ErrConfiguration is returned when the AI provider is missing credentials
	ErrConfiguration = errors.New("ai provider is not configured")

	// ErrUpstreamUnavailable is returned when the provider answers without usable content
	ErrUpstreamUnavailable = errors.New("no response from ai provider")

	// ErrMalformedResponse is returned when the provider content is not a JSON object
	ErrMalformedResponse = errors.New("malformed ai response")

	// ErrEmptyPrompt is returned when the user context is blank
	ErrEmptyPrompt = errors.New("prompt must not be empty")

	// ErrInvalidBatchSize is returned when a random pick asks for too few or too many sets
	ErrInvalidBatchSize = errors.New("invalid batch size")
)
