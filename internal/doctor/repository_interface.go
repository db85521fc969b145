package doctor

import "context"

type RepositoryInterface interface {
	ListVerified(ctx context.Context, specialization string) ([]DoctorResponse, error)
}

var _ RepositoryInterface = (*Repository)(nil)
