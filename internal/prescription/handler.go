package prescription

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clinician-ai/portal-service/internal/auth"
	"github.com/clinician-ai/portal-service/internal/pagination"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/prescriptions
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	var req CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), principal.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingPatient), errors.Is(err, ErrMissingDiagnosis),
			errors.Is(err, ErrNoMedicines), errors.Is(err, ErrInvalidMedicine),
			errors.Is(err, ErrInvalidAge):
			respondError(w, http.StatusBadRequest, "validation_error", err.Error())
		default:
			log.Printf("[ERROR] failed to create prescription: %v", err)
			respondError(w, http.StatusInternalServerError, "internal_error", "Failed to create prescription")
		}
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// List handles GET /api/prescriptions, scoped by the caller's role
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	params := pagination.ParseParams(r)

	var (
		prescriptions []PrescriptionResponse
		meta          pagination.Meta
		err           error
	)
	if principal.HasRole(auth.RoleDoctor) {
		prescriptions, meta, err = h.service.ListForDoctor(r.Context(), principal.UserID, params)
	} else {
		prescriptions, meta, err = h.service.ListForPatient(r.Context(), principal.UserID, params)
	}
	if err != nil {
		log.Printf("[ERROR] failed to list prescriptions: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "Failed to list prescriptions")
		return
	}

	respondJSON(w, http.StatusOK, PaginatedPrescriptionListResponse{
		Success:       true,
		Prescriptions: prescriptions,
		Pagination:    meta,
	})
}

// Get handles GET /api/prescriptions/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	id := mux.Vars(r)["id"]

	p, err := h.service.Get(r.Context(), principal.UserID, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respondError(w, http.StatusNotFound, "not_found", "Prescription not found")
		case errors.Is(err, ErrNotAuthorized):
			respondError(w, http.StatusForbidden, "forbidden", "You do not have access to this prescription")
		default:
			log.Printf("[ERROR] failed to get prescription: %v", err)
			respondError(w, http.StatusInternalServerError, "internal_error", "Failed to get prescription")
		}
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// Verify handles GET /api/verify/{id}. The route is public so pharmacies
// can confirm a prescription without a portal account.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	v, err := h.service.Verify(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to verify prescription: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "Failed to verify prescription")
		return
	}

	respondJSON(w, http.StatusOK, v)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[ERROR] failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, errorType, message string) {
	respondJSON(w, status, map[string]string{
		"error":   errorType,
		"message": message,
	})
}
