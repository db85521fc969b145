package doctor

import "context"

type ServiceInterface interface {
	ListVerified(ctx context.Context, specialization string) ([]DoctorResponse, error)
}

var _ ServiceInterface = (*Service)(nil)
