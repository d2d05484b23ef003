package identity

import "errors"

var (
	ErrUnauthorized        = errors.New("bot token rejected by Max API")
	ErrUpstreamUnavailable = errors.New("Max API unavailable")
	ErrUpstreamTimeout     = errors.New("Max API timed out")
	ErrUpstreamInvalid     = errors.New("Max API returned an invalid response")
)
