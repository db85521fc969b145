package appointment

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/clinician-ai/portal-service/internal/messaging"
	"github.com/clinician-ai/portal-service/internal/pagination"
)

var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// MetricsRecorder abstracts appointment metrics
type MetricsRecorder interface {
	RecordAppointmentOperation(ctx context.Context, operation string)
}

type Service struct {
	repo      RepositoryInterface
	publisher messaging.PublisherInterface
	metrics   MetricsRecorder
}

// NewService creates the appointment service. publisher and metrics may be nil.
func NewService(repo RepositoryInterface, publisher messaging.PublisherInterface, metrics MetricsRecorder) *Service {
	return &Service{repo: repo, publisher: publisher, metrics: metrics}
}

// Book creates a pending appointment for the patient.
func (s *Service) Book(ctx context.Context, patientID string, req BookAppointmentRequest) (*AppointmentResponse, error) {
	if req.Reason == "" {
		return nil, ErrMissingReason
	}
	if req.AppointmentDate.IsZero() {
		return nil, ErrMissingDate
	}
	if req.AppointmentDate.Before(time.Now()) {
		return nil, ErrPastDate
	}

	appt, err := s.repo.Create(ctx, patientID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to book appointment: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordAppointmentOperation(ctx, "book")
	}
	s.publishBooked(ctx, appt)

	return appt, nil
}

// ListForPatient returns a page of the patient's own appointments.
func (s *Service) ListForPatient(ctx context.Context, patientID string, params pagination.Params) (*PaginatedAppointmentListResponse, error) {
	appointments, total, err := s.repo.ListByPatient(ctx, patientID, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return &PaginatedAppointmentListResponse{
		Success:      true,
		Appointments: appointments,
		Pagination:   params.CalculateMeta(total),
	}, nil
}

// ListForDoctor returns a page of the doctor's schedule.
func (s *Service) ListForDoctor(ctx context.Context, doctorID string, params pagination.Params) (*PaginatedAppointmentListResponse, error) {
	appointments, total, err := s.repo.ListByDoctor(ctx, doctorID, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return &PaginatedAppointmentListResponse{
		Success:      true,
		Appointments: appointments,
		Pagination:   params.CalculateMeta(total),
	}, nil
}

// Update lets the assigned doctor record status changes and visit outcomes.
func (s *Service) Update(ctx context.Context, doctorID, id string, req UpdateAppointmentRequest) (*AppointmentResponse, error) {
	if req.Status != nil && !validStatuses[*req.Status] {
		return nil, ErrInvalidStatus
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	if existing.DoctorID != doctorID {
		return nil, ErrNotOwner
	}

	appt, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordAppointmentOperation(ctx, "update")
	}
	if req.Status != nil && *req.Status != existing.Status {
		s.publishUpdated(ctx, appt, existing.Status)
	}

	return appt, nil
}

func (s *Service) publishBooked(ctx context.Context, appt *AppointmentResponse) {
	if s.publisher == nil {
		return
	}
	event := messaging.AppointmentBookedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventAppointmentBooked),
		Data: messaging.AppointmentBookedData{
			AppointmentID:   appt.ID,
			PatientID:       appt.PatientID,
			DoctorID:        appt.DoctorID,
			AppointmentDate: appt.AppointmentDate,
			Reason:          appt.Reason,
			Status:          appt.Status,
			CreatedAt:       appt.CreatedAt,
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventAppointmentBooked, event); err != nil {
		log.Printf("Warning: failed to publish appointment.booked event: %v", err)
	}
}

func (s *Service) publishUpdated(ctx context.Context, appt *AppointmentResponse, oldStatus string) {
	if s.publisher == nil {
		return
	}
	event := messaging.AppointmentUpdatedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventAppointmentUpdated),
		Data: messaging.AppointmentUpdatedData{
			AppointmentID: appt.ID,
			PatientID:     appt.PatientID,
			OldStatus:     oldStatus,
			NewStatus:     appt.Status,
			UpdatedAt:     time.Now().UTC(),
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventAppointmentUpdated, event); err != nil {
		log.Printf("Warning: failed to publish appointment.updated event: %v", err)
	}
}
