package doctor

import "context"

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// ListVerified returns the verified doctor directory
func (s *Service) ListVerified(ctx context.Context, specialization string) ([]DoctorResponse, error) {
	return s.repo.ListVerified(ctx, specialization)
}
