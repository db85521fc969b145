package symptomcheck

import "context"

// RepositoryInterface defines the contract for symptom-check data access
type RepositoryInterface interface {
	GetHistorySnapshot(ctx context.Context, userID string) (*HistorySnapshot, error)
	ListRecentChecks(ctx context.Context, userID string, limit int) ([]PastCheck, error)
	InsertCheck(ctx context.Context, rec Record) error
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
