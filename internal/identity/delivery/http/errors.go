package http

import (
	"errors"
	"net/http"

	"maxbot-api/internal/identity"
	"maxbot-api/pkg/response"
)

// mapError translates identity errors into HTTP errors. Unknown errors
// return nil and are reported as 500 by the caller.
func (h *handler) mapError(err error) *response.HTTPError {
	switch {
	case errors.Is(err, identity.ErrUnauthorized):
		return badGateway(identity.ErrUnauthorized)
	case errors.Is(err, identity.ErrUpstreamTimeout):
		return &response.HTTPError{Status: http.StatusGatewayTimeout, Code: response.GatewayTimeoutCode, Message: identity.ErrUpstreamTimeout.Error()}
	case errors.Is(err, identity.ErrUpstreamUnavailable):
		return badGateway(identity.ErrUpstreamUnavailable)
	case errors.Is(err, identity.ErrUpstreamInvalid):
		return badGateway(identity.ErrUpstreamInvalid)
	default:
		return nil
	}
}

func badGateway(err error) *response.HTTPError {
	return &response.HTTPError{Status: http.StatusBadGateway, Code: response.BadGatewayCode, Message: err.Error()}
}
