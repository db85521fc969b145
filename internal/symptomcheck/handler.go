package symptomcheck

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/clinician-ai/portal-service/internal/auth"
	"github.com/clinician-ai/portal-service/internal/llm"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

type CheckListResponse struct {
	Success bool        `json:"success"`
	Checks  []PastCheck `json:"checks"`
	Total   int         `json:"total"`
}

// Analyze handles POST /api/symptom-checks. The bearer credential is
// optional; anonymous callers get an analysis without personalized context
// and without a history write.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	principal, _ := auth.FromContext(r.Context())

	result, err := h.service.Analyze(r.Context(), principal, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingSymptoms):
			respondError(w, http.StatusBadRequest, "Symptoms are required")
		case errors.Is(err, llm.ErrRateLimited):
			respondError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again in a moment.")
		case errors.Is(err, llm.ErrQuotaExhausted):
			respondError(w, http.StatusPaymentRequired, "Service temporarily unavailable. Please try again later.")
		default:
			respondError(w, http.StatusInternalServerError, "An error occurred during analysis")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// ListChecks handles GET /api/symptom-checks (authenticated).
func (h *Handler) ListChecks(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			limit = v
		}
	}

	checks, err := h.service.ListChecks(r.Context(), principal, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch symptom checks")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CheckListResponse{
		Success: true,
		Checks:  checks,
		Total:   len(checks),
	})
}

func respondError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
