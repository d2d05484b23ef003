package maxbot

import "context"

// Client is the blocking Max Bot API client. Safe for concurrent use.
type Client struct {
	core *core
}

// New creates a Client for the production API.
func New(accessToken string, opts ...Option) (*Client, error) {
	return NewWithBaseURL(accessToken, DefaultBaseURL, opts...)
}

// NewWithBaseURL creates a Client for an alternate deployment or a test server.
func NewWithBaseURL(accessToken, baseURL string, opts ...Option) (*Client, error) {
	c, err := newCore(accessToken, baseURL, opts)
	if err != nil {
		return nil, err
	}
	return &Client{core: c}, nil
}

// GetMe returns information about the bot owning the access token.
// It blocks until the exchange completes or ctx is done.
func (c *Client) GetMe(ctx context.Context) (*BotInfo, error) {
	return c.core.getMe(ctx)
}
