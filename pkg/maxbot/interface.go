package maxbot

import "context"

// IClient is the blocking identity API. Implemented by *Client.
type IClient interface {
	GetMe(ctx context.Context) (*BotInfo, error)
}

// IAsyncClient is the non-blocking identity API. Implemented by *AsyncClient.
type IAsyncClient interface {
	GetMe(ctx context.Context) *Pending
}

var (
	_ IClient      = (*Client)(nil)
	_ IAsyncClient = (*AsyncClient)(nil)
)
