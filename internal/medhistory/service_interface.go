package medhistory

import "context"

// ServiceInterface defines the contract for medical-history business logic
type ServiceInterface interface {
	GetMyHistory(ctx context.Context, patientID string) (*HistoryResponse, error)
	UpdateMyHistory(ctx context.Context, patientID string, req UpdateHistoryRequest) (*HistoryResponse, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
