package identity

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Get returns the bot identity, from cache unless input.Refresh is set.
	Get(ctx context.Context, input GetInput) (GetOutput, error)
	// ListCommands returns the commands advertised by the bot.
	ListCommands(ctx context.Context, input GetInput) (ListCommandsOutput, error)
	// Warmup fetches the identity in the background. The channel receives
	// the outcome once and is then closed.
	Warmup(ctx context.Context) <-chan error
	// Ready reports whether the identity has been fetched at least once.
	Ready() bool
}
