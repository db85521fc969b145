package prescription

import "context"

type RepositoryInterface interface {
	Create(ctx context.Context, doctorID string, req CreatePrescriptionRequest) (*PrescriptionResponse, error)
	Get(ctx context.Context, id string) (*PrescriptionResponse, error)
	ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]PrescriptionResponse, int, error)
	ListByDoctor(ctx context.Context, doctorID string, limit, offset int) ([]PrescriptionResponse, int, error)
	GetVerification(ctx context.Context, id string) (*VerificationResponse, error)
}

var _ RepositoryInterface = (*Repository)(nil)
