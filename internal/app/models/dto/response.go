package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message" example:"Student created successfully"`
}

// Success messages returned by the student endpoints
const (
	MessageStudentCreated = "Student created successfully"
	MessageStudentUpdated = "Student updated successfully"
	MessageStudentDeleted = "Student deleted successfully"
)

// HealthResponse is returned by the ping endpoint
type HealthResponse struct {
	Message  string `json:"message" example:"pong"`
	Status   string `json:"status" example:"success"`
	Database string `json:"database" example:"up"`
}
