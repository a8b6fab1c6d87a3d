package dto

// ErrorResponse is the body of every failed request: {"error": "<message>"}
type ErrorResponse struct {
	Error string `json:"error" example:"Student not found"`
}

// MessageStudentNotFound is the 404 message for key-based lookups and mutations
const MessageStudentNotFound = "Student not found"

// NewErrorResponse creates an error body, falling back to a generic message when empty
func NewErrorResponse(message string) ErrorResponse {
	if message == "" {
		message = "Internal server error"
	}
	return ErrorResponse{Error: message}
}
