package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message    string   `json:"message" validate:"required,min=1"`
	UserSkills []string `json:"userSkills,omitempty"`
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ChatResponse is the envelope returned by POST /api/chat.
type ChatResponse struct {
	Success   bool         `json:"success"`
	Data      *AgentResult `json:"data,omitempty"`
	Error     string       `json:"error,omitempty"`
	Timestamp string       `json:"timestamp,omitempty"`
}

// NewChatResponse wraps an agent result in a success envelope with the
// current timestamp.
func NewChatResponse(result AgentResult) ChatResponse {
	return ChatResponse{
		Success:   true,
		Data:      &result,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status       string `json:"status"`
	AIConfigured bool   `json:"aiConfigured"`
	Timestamp    string `json:"timestamp"`
}
