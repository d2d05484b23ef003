package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500
	BadGatewayCode          = 502
	GatewayTimeoutCode      = 504
	TooManyRequestsCode     = 429
)
