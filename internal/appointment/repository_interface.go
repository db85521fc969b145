package appointment

import "context"

// RepositoryInterface defines the contract for appointment data access
type RepositoryInterface interface {
	Create(ctx context.Context, patientID string, req BookAppointmentRequest) (*AppointmentResponse, error)
	Get(ctx context.Context, id string) (*AppointmentResponse, error)
	ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]AppointmentResponse, int, error)
	ListByDoctor(ctx context.Context, doctorID string, limit, offset int) ([]AppointmentResponse, int, error)
	Update(ctx context.Context, id string, req UpdateAppointmentRequest) (*AppointmentResponse, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
