package maxbot

import (
	"encoding/json"
	"time"
)

// BotInfo is the response of GET /me: identity of the bot owning the token.
type BotInfo struct {
	UserID    int64   `json:"user_id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name,omitempty"`

	// Name mirrors FirstName.
	//
	// Deprecated: use FirstName. The API still populates it.
	Name *string `json:"name,omitempty"`

	Username         *string      `json:"username,omitempty"` // globally unique, may be absent
	IsBot            bool         `json:"is_bot"`
	LastActivityTime int64        `json:"last_activity_time"` // Unix milliseconds
	Description      *string      `json:"description,omitempty"`
	AvatarURL        *string      `json:"avatar_url,omitempty"`
	FullAvatarURL    *string      `json:"full_avatar_url,omitempty"`
	Commands         []BotCommand `json:"commands"` // up to 32
}

// BotCommand is a command advertised by the bot.
type BotCommand struct {
	Name        string  `json:"name"` // 1-64 chars
	Description *string `json:"description,omitempty"`
}

// LastActivity returns LastActivityTime as a time.Time.
func (b BotInfo) LastActivity() time.Time {
	return time.UnixMilli(b.LastActivityTime)
}

// UnmarshalJSON decodes b and rejects documents that omit a required field
// or set it to null. b is left untouched on error.
func (b *BotInfo) UnmarshalJSON(data []byte) error {
	var raw struct {
		UserID           *int64        `json:"user_id"`
		FirstName        *string       `json:"first_name"`
		LastName         *string       `json:"last_name"`
		Name             *string       `json:"name"`
		Username         *string       `json:"username"`
		IsBot            *bool         `json:"is_bot"`
		LastActivityTime *int64        `json:"last_activity_time"`
		Description      *string       `json:"description"`
		AvatarURL        *string       `json:"avatar_url"`
		FullAvatarURL    *string       `json:"full_avatar_url"`
		Commands         *[]BotCommand `json:"commands"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.UserID == nil:
		return &MissingFieldError{Object: "bot info", Field: "user_id"}
	case raw.FirstName == nil:
		return &MissingFieldError{Object: "bot info", Field: "first_name"}
	case raw.IsBot == nil:
		return &MissingFieldError{Object: "bot info", Field: "is_bot"}
	case raw.LastActivityTime == nil:
		return &MissingFieldError{Object: "bot info", Field: "last_activity_time"}
	case raw.Commands == nil:
		return &MissingFieldError{Object: "bot info", Field: "commands"}
	}

	*b = BotInfo{
		UserID:           *raw.UserID,
		FirstName:        *raw.FirstName,
		LastName:         raw.LastName,
		Name:             raw.Name,
		Username:         raw.Username,
		IsBot:            *raw.IsBot,
		LastActivityTime: *raw.LastActivityTime,
		Description:      raw.Description,
		AvatarURL:        raw.AvatarURL,
		FullAvatarURL:    raw.FullAvatarURL,
		Commands:         *raw.Commands,
	}
	return nil
}

// UnmarshalJSON decodes c and requires the name field.
func (c *BotCommand) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Name == nil {
		return &MissingFieldError{Object: "bot command", Field: "name"}
	}

	*c = BotCommand{Name: *raw.Name, Description: raw.Description}
	return nil
}
