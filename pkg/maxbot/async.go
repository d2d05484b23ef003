package maxbot

import "context"

// AsyncClient is the non-blocking Max Bot API client. Each call runs in its
// own goroutine; the returned Pending is resolved once.
type AsyncClient struct {
	core *core
}

// NewAsync creates an AsyncClient for the production API.
func NewAsync(accessToken string, opts ...Option) (*AsyncClient, error) {
	return NewAsyncWithBaseURL(accessToken, DefaultBaseURL, opts...)
}

// NewAsyncWithBaseURL creates an AsyncClient for an alternate deployment or a test server.
func NewAsyncWithBaseURL(accessToken, baseURL string, opts ...Option) (*AsyncClient, error) {
	c, err := newCore(accessToken, baseURL, opts)
	if err != nil {
		return nil, err
	}
	return &AsyncClient{core: c}, nil
}

// GetMe starts fetching the bot identity and returns immediately.
// Cancelling ctx aborts the in-flight request.
func (c *AsyncClient) GetMe(ctx context.Context) *Pending {
	p := &Pending{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.info, p.err = c.core.getMe(ctx)
	}()
	return p
}

// Pending is the eventual result of AsyncClient.GetMe.
type Pending struct {
	done chan struct{}
	info *BotInfo
	err  error
}

// Done is closed once the result is available.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the result is available or ctx is done. Giving up on
// ctx does not cancel the request; cancel the context passed to GetMe for that.
func (p *Pending) Wait(ctx context.Context) (*BotInfo, error) {
	select {
	case <-p.done:
		return p.info, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
