package http

import (
	"maxbot-api/internal/identity"
	"maxbot-api/pkg/log"
)

type handler struct {
	l  log.Logger
	uc identity.UseCase
}

// New creates a new HTTP handler for the identity domain.
func New(l log.Logger, uc identity.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
