package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"maxbot-api/internal/identity"
	"maxbot-api/pkg/maxbot"
)

// Get returns the cached identity or fetches it with the blocking client.
func (uc *implUseCase) Get(ctx context.Context, input identity.GetInput) (identity.GetOutput, error) {
	if !input.Refresh {
		if cached, ok := uc.cache.Get(cacheKey); ok {
			return identity.GetOutput{Bot: cached.bot, FetchedAt: cached.fetchedAt, FromCache: true}, nil
		}
	}

	info, err := uc.client.GetMe(ctx)
	if err != nil {
		return identity.GetOutput{}, mapClientError(err)
	}

	cached := uc.store(info)
	return identity.GetOutput{Bot: cached.bot, FetchedAt: cached.fetchedAt}, nil
}

// ListCommands returns the commands of the bot identity.
func (uc *implUseCase) ListCommands(ctx context.Context, input identity.GetInput) (identity.ListCommandsOutput, error) {
	out, err := uc.Get(ctx, input)
	if err != nil {
		return identity.ListCommandsOutput{}, err
	}
	return identity.ListCommandsOutput{
		BotID:     out.Bot.UserID,
		Commands:  out.Bot.Commands,
		FetchedAt: out.FetchedAt,
	}, nil
}

func (uc *implUseCase) store(info *maxbot.BotInfo) cachedIdentity {
	cached := cachedIdentity{bot: *info, fetchedAt: uc.now()}
	uc.cache.Add(cacheKey, cached)
	uc.ready.Store(true)
	return cached
}

// mapClientError translates maxbot error kinds into identity domain errors,
// keeping the client error in the chain.
func mapClientError(err error) error {
	switch maxbot.KindOf(err) {
	case maxbot.KindStatus:
		var statusErr *maxbot.StatusError
		if errors.As(err, &statusErr) &&
			(statusErr.Code == http.StatusUnauthorized || statusErr.Code == http.StatusForbidden) {
			return fmt.Errorf("%w: %w", identity.ErrUnauthorized, err)
		}
		return fmt.Errorf("%w: %w", identity.ErrUpstreamUnavailable, err)
	case maxbot.KindTransport:
		var transportErr *maxbot.TransportError
		if errors.As(err, &transportErr) && transportErr.Timeout() {
			return fmt.Errorf("%w: %w", identity.ErrUpstreamTimeout, err)
		}
		return fmt.Errorf("%w: %w", identity.ErrUpstreamUnavailable, err)
	case maxbot.KindIO:
		var ioErr *maxbot.IOError
		if errors.As(err, &ioErr) && ioErr.Timeout() {
			return fmt.Errorf("%w: %w", identity.ErrUpstreamTimeout, err)
		}
		return fmt.Errorf("%w: %w", identity.ErrUpstreamUnavailable, err)
	case maxbot.KindJSON:
		return fmt.Errorf("%w: %w", identity.ErrUpstreamInvalid, err)
	default:
		return err
	}
}
