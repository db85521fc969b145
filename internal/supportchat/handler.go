package supportchat

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/clinician-ai/portal-service/internal/llm"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Chat handles POST /api/support-chat
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	resp, err := h.service.Chat(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoMessages), errors.Is(err, ErrTooManyMessages), errors.Is(err, ErrInvalidMessage):
			respondError(w, http.StatusBadRequest, "validation_error", err.Error())
		case errors.Is(err, llm.ErrRateLimited):
			respondError(w, http.StatusTooManyRequests, "rate_limited", "Rate limit exceeded. Please try again in a moment.")
		case errors.Is(err, llm.ErrQuotaExhausted):
			respondError(w, http.StatusPaymentRequired, "quota_exhausted", "Service temporarily unavailable. Please try again later.")
		default:
			log.Printf("[ERROR] support chat failed: %v", err)
			respondError(w, http.StatusInternalServerError, "internal_error", "Failed to process chat message")
		}
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[ERROR] failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, statusCode int, errorType, message string) {
	respondJSON(w, statusCode, map[string]string{
		"error":   errorType,
		"message": message,
	})
}
