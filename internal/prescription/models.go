package prescription

import (
	"time"

	"github.com/clinician-ai/portal-service/internal/pagination"
)

// Medicine is one prescribed item, stored as part of the medicines JSON column
type Medicine struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// CreatePrescriptionRequest represents a doctor issuing a prescription
type CreatePrescriptionRequest struct {
	PatientID   string     `json:"patient_id"`
	PatientName string     `json:"patient_name"`
	PatientAge  int        `json:"patient_age"`
	Diagnosis   string     `json:"diagnosis"`
	Medicines   []Medicine `json:"medicines"`
	Advice      string     `json:"advice,omitempty"`
}

// PrescriptionResponse represents the prescription data returned to clients
type PrescriptionResponse struct {
	ID               string     `json:"id"`
	DoctorID         string     `json:"doctor_id"`
	PatientID        string     `json:"patient_id"`
	PatientName      string     `json:"patient_name"`
	PatientAge       int        `json:"patient_age"`
	Diagnosis        string     `json:"diagnosis"`
	Medicines        []Medicine `json:"medicines"`
	Advice           string     `json:"advice,omitempty"`
	PrescriptionDate time.Time  `json:"prescription_date"`
	CreatedAt        time.Time  `json:"created_at"`
}

// VerificationResponse is the public authenticity view of a prescription.
// It intentionally omits the medicines and advice.
type VerificationResponse struct {
	Valid            bool      `json:"valid"`
	PrescriptionID   string    `json:"prescription_id,omitempty"`
	DoctorName       string    `json:"doctor_name,omitempty"`
	Specialization   string    `json:"specialization,omitempty"`
	PatientName      string    `json:"patient_name,omitempty"`
	Diagnosis        string    `json:"diagnosis,omitempty"`
	PrescriptionDate time.Time `json:"prescription_date,omitempty"`
}

// PaginatedPrescriptionListResponse wraps a page of prescriptions
type PaginatedPrescriptionListResponse struct {
	Success       bool                   `json:"success"`
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Pagination    pagination.Meta        `json:"pagination"`
}
