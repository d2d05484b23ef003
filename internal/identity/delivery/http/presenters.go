package http

import (
	"time"

	"maxbot-api/internal/identity"
	"maxbot-api/pkg/maxbot"
)

// --- Request DTOs ---

type getReq struct {
	Refresh bool `form:"refresh"`
}

func (r getReq) toInput() identity.GetInput {
	return identity.GetInput{Refresh: r.Refresh}
}

// --- Response DTOs ---

type commandResp struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func newCommandResps(cmds []maxbot.BotCommand) []commandResp {
	out := make([]commandResp, len(cmds))
	for i, cmd := range cmds {
		out[i] = commandResp{Name: cmd.Name, Description: cmd.Description}
	}
	return out
}

type meResp struct {
	UserID        int64         `json:"user_id"`
	FirstName     string        `json:"first_name"`
	LastName      *string       `json:"last_name,omitempty"`
	Username      *string       `json:"username,omitempty"`
	IsBot         bool          `json:"is_bot"`
	LastActivity  time.Time     `json:"last_activity"`
	Description   *string       `json:"description,omitempty"`
	AvatarURL     *string       `json:"avatar_url,omitempty"`
	FullAvatarURL *string       `json:"full_avatar_url,omitempty"`
	Commands      []commandResp `json:"commands"`
	FetchedAt     time.Time     `json:"fetched_at"`
	Cached        bool          `json:"cached"`
}

func (h *handler) newMeResp(out identity.GetOutput) meResp {
	bot := out.Bot
	return meResp{
		UserID:        bot.UserID,
		FirstName:     bot.FirstName,
		LastName:      bot.LastName,
		Username:      bot.Username,
		IsBot:         bot.IsBot,
		LastActivity:  bot.LastActivity().UTC(),
		Description:   bot.Description,
		AvatarURL:     bot.AvatarURL,
		FullAvatarURL: bot.FullAvatarURL,
		Commands:      newCommandResps(bot.Commands),
		FetchedAt:     out.FetchedAt.UTC(),
		Cached:        out.FromCache,
	}
}

type commandsResp struct {
	BotID     int64         `json:"bot_id"`
	Commands  []commandResp `json:"commands"`
	Total     int           `json:"total"`
	FetchedAt time.Time     `json:"fetched_at"`
}

func (h *handler) newCommandsResp(out identity.ListCommandsOutput) commandsResp {
	return commandsResp{
		BotID:     out.BotID,
		Commands:  newCommandResps(out.Commands),
		Total:     len(out.Commands),
		FetchedAt: out.FetchedAt.UTC(),
	}
}
