package maxbot

const (
	// DefaultBaseURL is the production Max Bot API endpoint.
	DefaultBaseURL = "https://botapi.max.ru"

	// AccessTokenParam is the query parameter carrying the bot token.
	AccessTokenParam = "access_token"

	mePath = "/me"

	redactedToken = "*****"
)
