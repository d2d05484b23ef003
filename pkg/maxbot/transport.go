package maxbot

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"strings"
)

// systemCertPool is swapped in tests.
var systemCertPool = x509.SystemCertPool

// httpsOnlyTransport refuses any request whose URL is not https, redirects included.
type httpsOnlyTransport struct {
	next http.RoundTripper
}

func (t *httpsOnlyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !strings.EqualFold(req.URL.Scheme, "https") {
		if req.Body != nil {
			req.Body.Close()
		}
		return nil, fmt.Errorf("%w: got %q", ErrInsecureScheme, req.URL.Scheme)
	}
	return t.next.RoundTrip(req)
}

func newTLSTransport() (*http.Transport, error) {
	pool, err := systemCertPool()
	if err != nil {
		return nil, fmt.Errorf("failed to load system root CAs: %w", err)
	}

	t := http.DefaultTransport.(*http.Transport).Clone()
	t.TLSClientConfig = &tls.Config{
		MinVersion: tls.VersionTLS12,
		RootCAs:    pool,
	}
	return t, nil
}

// newHTTPClient builds the client used by core. When the TLS transport cannot
// be built it falls back to a plain default transport with HTTPS enforcement
// off, unless strict mode is requested.
func newHTTPClient(o options) (*http.Client, error) {
	if o.httpClient != nil {
		c := *o.httpClient
		if o.httpsOnly {
			next := c.Transport
			if next == nil {
				next = http.DefaultTransport
			}
			c.Transport = &httpsOnlyTransport{next: next}
		}
		if o.timeout > 0 {
			c.Timeout = o.timeout
		}
		return &c, nil
	}

	t, err := newTLSTransport()
	if err != nil {
		if o.strict {
			return nil, fmt.Errorf("maxbot: failed to build transport: %w", err)
		}
		o.logger.Warnf(context.Background(), "maxbot: %v; falling back to default transport, HTTPS enforcement disabled", err)
		return &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
			Timeout:   o.timeout,
		}, nil
	}

	var rt http.RoundTripper = t
	if o.httpsOnly {
		rt = &httpsOnlyTransport{next: t}
	}
	return &http.Client{Transport: rt, Timeout: o.timeout}, nil
}
