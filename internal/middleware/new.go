package middleware

import (
	"maxbot-api/pkg/log"
)

// Config configures the inbound middlewares.
type Config struct {
	RequestsPerMin int
}

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:           l,
		rateLimiter: newRateLimiter(cfg.RequestsPerMin),
	}
}
