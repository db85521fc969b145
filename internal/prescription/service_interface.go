package prescription

import (
	"context"

	"github.com/clinician-ai/portal-service/internal/pagination"
)

type ServiceInterface interface {
	Create(ctx context.Context, doctorID string, req CreatePrescriptionRequest) (*PrescriptionResponse, error)
	Get(ctx context.Context, userID, id string) (*PrescriptionResponse, error)
	ListForPatient(ctx context.Context, patientID string, params pagination.Params) ([]PrescriptionResponse, pagination.Meta, error)
	ListForDoctor(ctx context.Context, doctorID string, params pagination.Params) ([]PrescriptionResponse, pagination.Meta, error)
	Verify(ctx context.Context, id string) (*VerificationResponse, error)
}

var _ ServiceInterface = (*Service)(nil)
