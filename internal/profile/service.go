package profile

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetMyProfile(ctx context.Context, userID string) (*ProfileResponse, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

func (s *Service) UpdateMyProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*ProfileResponse, error) {
	if req.FullName != nil && *req.FullName == "" {
		return nil, fmt.Errorf("full name cannot be empty")
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		if _, err := time.Parse("2006-01-02", *req.DateOfBirth); err != nil {
			return nil, fmt.Errorf("date of birth must be in YYYY-MM-DD format")
		}
	}

	p, err := s.repo.UpdateProfile(ctx, userID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return p, nil
}
