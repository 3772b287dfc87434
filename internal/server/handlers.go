package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/jsexpertdev/ostad-ai-agent/internal/types"
)

// chatFailureMessage is the stable error surfaced for any unexpected
// internal failure. Classification failures never reach this branch;
// they are absorbed by the classifier's fallback.
const chatFailureMessage = "Failed to process your request. Please try again."

// handleChat classifies the message and dispatches it to an agent.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[chat] panic processing request: %v", rec)
			s.jsonResponse(w, http.StatusInternalServerError, types.ChatResponse{
				Success: false,
				Error:   chatFailureMessage,
			})
		}
	}()

	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Message is required")
		return
	}

	intent := s.classifier.Classify(r.Context(), req.Message)
	result := s.dispatcher.Dispatch(intent, req.UserSkills)

	s.jsonResponse(w, http.StatusOK, types.NewChatResponse(result))
}

// handleSkills returns every skill in the role catalog, sorted and
// de-duplicated.
func (s *Server) handleSkills(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skills": s.kb.AllSkills(),
	})
}

// handleJobs returns the full static job catalog.
func (s *Server) handleJobs(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobs": s.kb.Jobs(),
	})
}

// handleHealth returns server health and whether the AI classifier
// credential is configured.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, types.HealthResponse{
		Status:       "OK",
		AIConfigured: s.classifier.AIConfigured(),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}
