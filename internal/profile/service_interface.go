package profile

import "context"

// ServiceInterface defines the contract for profile business logic
type ServiceInterface interface {
	GetMyProfile(ctx context.Context, userID string) (*ProfileResponse, error)
	UpdateMyProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*ProfileResponse, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
