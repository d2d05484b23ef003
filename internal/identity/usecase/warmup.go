package usecase

import (
	"context"
)

// Warmup starts a non-blocking fetch so startup never waits on the Max API.
func (uc *implUseCase) Warmup(ctx context.Context) <-chan error {
	pending := uc.async.GetMe(ctx)
	done := make(chan error, 1)

	go func() {
		defer close(done)

		info, err := pending.Wait(ctx)
		if err != nil {
			uc.l.Warnf(ctx, "identity warmup failed: %v", err)
			done <- mapClientError(err)
			return
		}

		uc.store(info)
		uc.l.Infof(ctx, "identity warmed up: bot %d (%s)", info.UserID, info.FirstName)
		done <- nil
	}()

	return done
}

// Ready reports whether an identity has been fetched at least once.
func (uc *implUseCase) Ready() bool {
	return uc.ready.Load()
}
