package messaging

import (
	"time"

	"github.com/google/uuid"
)

// Event routing keys as constants
const (
	// Symptom-check events
	EventSymptomCheckCompleted = "symptom_check.completed"

	// Appointment events
	EventAppointmentBooked  = "appointment.booked"
	EventAppointmentUpdated = "appointment.updated"

	// Prescription events
	EventPrescriptionCreated = "prescription.created"
)

const serviceName = "portal-service"

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventType   string    `json:"event_type"`
	EventID     string    `json:"event_id"`
	Timestamp   time.Time `json:"timestamp"`
	ServiceName string    `json:"service_name"`
}

// NewBaseEvent fills the common envelope for an event type
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		EventType:   eventType,
		EventID:     uuid.New().String(),
		Timestamp:   time.Now().UTC(),
		ServiceName: serviceName,
	}
}

// SymptomCheckCompletedEvent is emitted after an analysis finished,
// whether or not the history row was persisted.
type SymptomCheckCompletedEvent struct {
	BaseEvent
	Data SymptomCheckCompletedData `json:"data"`
}

type SymptomCheckCompletedData struct {
	UserID        string    `json:"user_id,omitempty"` // empty for anonymous checks
	SeverityLevel string    `json:"severity_level"`
	IsEmergency   bool      `json:"is_emergency"`
	Conditions    []string  `json:"conditions_identified"`
	Fallback      bool      `json:"fallback"`
	CompletedAt   time.Time `json:"completed_at"`
}

// AppointmentBookedEvent represents a newly booked appointment
type AppointmentBookedEvent struct {
	BaseEvent
	Data AppointmentBookedData `json:"data"`
}

type AppointmentBookedData struct {
	AppointmentID   string    `json:"appointment_id"`
	PatientID       string    `json:"patient_id"`
	DoctorID        string    `json:"doctor_id,omitempty"`
	AppointmentDate time.Time `json:"appointment_date"`
	Reason          string    `json:"reason"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// AppointmentUpdatedEvent represents a status or outcome change on an appointment
type AppointmentUpdatedEvent struct {
	BaseEvent
	Data AppointmentUpdatedData `json:"data"`
}

type AppointmentUpdatedData struct {
	AppointmentID string    `json:"appointment_id"`
	PatientID     string    `json:"patient_id"`
	OldStatus     string    `json:"old_status"`
	NewStatus     string    `json:"new_status"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PrescriptionCreatedEvent represents a newly issued prescription
type PrescriptionCreatedEvent struct {
	BaseEvent
	Data PrescriptionCreatedData `json:"data"`
}

type PrescriptionCreatedData struct {
	PrescriptionID string    `json:"prescription_id"`
	DoctorID       string    `json:"doctor_id"`
	PatientID      string    `json:"patient_id"`
	Diagnosis      string    `json:"diagnosis"`
	CreatedAt      time.Time `json:"created_at"`
}
