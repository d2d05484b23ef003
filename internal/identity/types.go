package identity

import (
	"time"

	"maxbot-api/pkg/maxbot"
)

type GetInput struct {
	Refresh bool
}

type GetOutput struct {
	Bot       maxbot.BotInfo
	FetchedAt time.Time
	FromCache bool
}

type ListCommandsOutput struct {
	BotID     int64
	Commands  []maxbot.BotCommand
	FetchedAt time.Time
}
