package maxbot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"maxbot-api/pkg/log"
)

// core is the /me protocol shared by Client and AsyncClient.
// It is immutable after newCore returns.
type core struct {
	httpClient  *http.Client
	endpoint    string // {base_url}/me
	accessToken string
	auth        Authenticator
	l           log.Logger
}

func newCore(accessToken, baseURL string, opts []Option) (*core, error) {
	if accessToken == "" {
		return nil, ErrTokenRequired
	}
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q has no scheme or host", ErrInvalidBaseURL, baseURL)
	}
	if u.RawQuery != "" || u.ForceQuery || u.Fragment != "" {
		return nil, fmt.Errorf("%w: %q must not carry a query or fragment", ErrInvalidBaseURL, baseURL)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	httpClient, err := newHTTPClient(o)
	if err != nil {
		return nil, err
	}

	return &core{
		httpClient:  httpClient,
		endpoint:    u.JoinPath(mePath).String(),
		accessToken: accessToken,
		auth:        o.auth,
		l:           o.logger,
	}, nil
}

// getMe performs one GET /me exchange.
func (c *core) getMe(ctx context.Context) (*BotInfo, error) {
	req, err := c.newMeRequest(ctx)
	if err != nil {
		return nil, err
	}

	c.l.Debugf(ctx, "maxbot: GET %s", c.redact(req.URL.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	c.l.Debugf(ctx, "maxbot: GET %s -> %d", mePath, resp.StatusCode)

	return readMeResponse(resp)
}

func (c *core) newMeRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	c.auth.Authenticate(req, c.accessToken)
	return req, nil
}

func (c *core) redact(s string) string {
	s = strings.ReplaceAll(s, url.QueryEscape(c.accessToken), redactedToken)
	return strings.ReplaceAll(s, c.accessToken, redactedToken)
}

// readMeResponse interprets a completed exchange: status first, then the body
// as text, then strict JSON. It always closes the body.
func readMeResponse(resp *http.Response) (*BotInfo, error) {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &IOError{Err: err}
	}

	return decodeBotInfo(body)
}

func decodeBotInfo(body []byte) (*BotInfo, error) {
	var info BotInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, newJSONError(err)
	}
	return &info, nil
}
