package response

// Response messages
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"
)

// Error codes
const (
	InternalServerErrorCode = 500
	TooManyRequestsCode     = 429
)

// Time formats
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
