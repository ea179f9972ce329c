package dto

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Success bool   `json:"success" example:"true"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty" example:"Blog not found"`
	Error   any    `json:"error,omitempty"`
}

// ErrorResponseDTO documents the failure shape for swagger.
type ErrorResponseDTO struct {
	Success bool              `json:"success" example:"false"`
	Message string            `json:"message" example:"Unauthorized"`
	Error   map[string]string `json:"error,omitempty"`
}

// Empty serializes as {} and is the payload of a successful delete.
type Empty struct{}
