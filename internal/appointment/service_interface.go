package appointment

import (
	"context"

	"github.com/clinician-ai/portal-service/internal/pagination"
)

// ServiceInterface defines the contract for appointment business logic
type ServiceInterface interface {
	Book(ctx context.Context, patientID string, req BookAppointmentRequest) (*AppointmentResponse, error)
	ListForPatient(ctx context.Context, patientID string, params pagination.Params) (*PaginatedAppointmentListResponse, error)
	ListForDoctor(ctx context.Context, doctorID string, params pagination.Params) (*PaginatedAppointmentListResponse, error)
	Update(ctx context.Context, doctorID, id string, req UpdateAppointmentRequest) (*AppointmentResponse, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
