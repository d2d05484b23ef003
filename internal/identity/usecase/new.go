package usecase

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"maxbot-api/pkg/log"
	"maxbot-api/pkg/maxbot"
)

const cacheKey = "me"

type cachedIdentity struct {
	bot       maxbot.BotInfo
	fetchedAt time.Time
}

// implUseCase is the private implementation of identity.UseCase.
type implUseCase struct {
	l      log.Logger
	client maxbot.IClient
	async  maxbot.IAsyncClient
	cache  *expirable.LRU[string, cachedIdentity]
	ready  atomic.Bool
	now    func() time.Time
}

// New creates a new identity UseCase. ttl bounds how long a fetched identity
// is served before the next call goes to the API again.
func New(l log.Logger, client maxbot.IClient, async maxbot.IAsyncClient, ttl time.Duration) *implUseCase {
	return &implUseCase{
		l:      l,
		client: client,
		async:  async,
		cache:  expirable.NewLRU[string, cachedIdentity](1, nil, ttl),
		now:    time.Now,
	}
}
