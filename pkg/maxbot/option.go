package maxbot

import (
	"net/http"
	"time"

	"maxbot-api/pkg/log"
)

// Option configures a client at construction time.
type Option func(*options)

type options struct {
	httpsOnly  bool
	strict     bool
	timeout    time.Duration
	httpClient *http.Client
	auth       Authenticator
	logger     log.Logger
}

func defaultOptions() options {
	return options{
		httpsOnly: true,
		auth:      QueryAuth{},
		logger:    log.NewNop(),
	}
}

// WithHTTPSOnly toggles rejection of non-https request URLs. Enabled by default.
func WithHTTPSOnly(enforce bool) Option {
	return func(o *options) {
		o.httpsOnly = enforce
	}
}

// WithStrictTransport makes the constructor fail when the TLS transport cannot
// be built, instead of falling back to a default transport without HTTPS enforcement.
func WithStrictTransport() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithTimeout sets an overall deadline per call. Zero means no client deadline.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithHTTPClient uses c for requests. The client is copied, never mutated;
// HTTPS enforcement and timeout still apply to the copy.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithAuthenticator changes how the access token is attached.
func WithAuthenticator(a Authenticator) Option {
	return func(o *options) {
		if a != nil {
			o.auth = a
		}
	}
}

// WithLogger sets the logger used for request tracing at debug level.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
