package medhistory

import "context"

// RepositoryInterface defines the contract for medical-history data access
type RepositoryInterface interface {
	GetByPatient(ctx context.Context, patientID string) (*HistoryResponse, error)
	Upsert(ctx context.Context, patientID string, req UpdateHistoryRequest) (*HistoryResponse, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
