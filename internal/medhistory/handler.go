package medhistory

import (
	"encoding/json"
	"net/http"

	"github.com/clinician-ai/portal-service/internal/auth"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

type HistorySuccessResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	History *HistoryResponse `json:"history"`
}

// GetMyHistory handles GET /api/medical-history
func (h *Handler) GetMyHistory(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "User not authenticated")
		return
	}

	history, err := h.service.GetMyHistory(r.Context(), principal.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "fetch_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HistorySuccessResponse{
		Success: true,
		History: history,
	})
}

// UpdateMyHistory handles PUT /api/medical-history
func (h *Handler) UpdateMyHistory(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "User not authenticated")
		return
	}

	var req UpdateHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	history, err := h.service.UpdateMyHistory(r.Context(), principal.UserID, req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "update_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HistorySuccessResponse{
		Success: true,
		Message: "Medical history updated successfully",
		History: history,
	})
}

func respondError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	})
}
