package doctor

import (
	"encoding/json"
	"log"
	"net/http"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/doctors. Accepts an optional ?specialization= filter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	specialization := r.URL.Query().Get("specialization")

	doctors, err := h.service.ListVerified(r.Context(), specialization)
	if err != nil {
		log.Printf("[ERROR] failed to list doctors: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "Failed to list doctors")
		return
	}

	respondJSON(w, http.StatusOK, DoctorListResponse{Success: true, Doctors: doctors})
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
