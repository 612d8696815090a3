package response

const (
	// MessageSuccess is the message of every successful response.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides the cause of unclassified failures.
	DefaultErrorMessage = "Internal server error."

	// InternalServerErrorCode is the machine code of unclassified failures.
	InternalServerErrorCode = "INTERNAL_SERVER_ERROR"

	// NotFoundCode is the machine code of unknown routes.
	NotFoundCode = "NOT_FOUND"
)
