package appointment

import (
	"time"

	"github.com/clinician-ai/portal-service/internal/pagination"
)

// Appointment statuses
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// BookAppointmentRequest represents a patient booking an appointment
type BookAppointmentRequest struct {
	DoctorID        string    `json:"doctor_id"`
	AppointmentDate time.Time `json:"appointment_date"`
	Reason          string    `json:"reason"`
}

// UpdateAppointmentRequest represents a doctor recording the outcome of a visit
type UpdateAppointmentRequest struct {
	Status       *string    `json:"status,omitempty"`
	Diagnosis    *string    `json:"diagnosis,omitempty"`
	Prescription *string    `json:"prescription,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	FollowUpDate *time.Time `json:"follow_up_date,omitempty"`
}

// AppointmentResponse represents the appointment data returned to clients
type AppointmentResponse struct {
	ID              string     `json:"id"`
	PatientID       string     `json:"patient_id"`
	DoctorID        string     `json:"doctor_id,omitempty"`
	AppointmentDate time.Time  `json:"appointment_date"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	Diagnosis       string     `json:"diagnosis,omitempty"`
	Prescription    string     `json:"prescription,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	FollowUpDate    *time.Time `json:"follow_up_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// PaginatedAppointmentListResponse wraps a page of appointments
type PaginatedAppointmentListResponse struct {
	Success      bool                  `json:"success"`
	Appointments []AppointmentResponse `json:"appointments"`
	Pagination   pagination.Meta       `json:"pagination"`
}
