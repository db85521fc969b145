package medhistory

import (
	"context"
	"fmt"
)

var validBloodTypes = map[string]bool{
	"A+": true, "A-": true, "B+": true, "B-": true,
	"AB+": true, "AB-": true, "O+": true, "O-": true,
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// GetMyHistory returns the caller's history, nil when none has been recorded.
func (s *Service) GetMyHistory(ctx context.Context, patientID string) (*HistoryResponse, error) {
	history, err := s.repo.GetByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get medical history: %w", err)
	}
	return history, nil
}

// UpdateMyHistory validates and stores the caller's self-reported history.
func (s *Service) UpdateMyHistory(ctx context.Context, patientID string, req UpdateHistoryRequest) (*HistoryResponse, error) {
	if req.BloodType != "" && !validBloodTypes[req.BloodType] {
		return nil, fmt.Errorf("invalid blood type: %s", req.BloodType)
	}
	if req.HeightCm != nil && (*req.HeightCm <= 0 || *req.HeightCm > 300) {
		return nil, fmt.Errorf("height must be between 0 and 300 cm")
	}
	if req.WeightKg != nil && (*req.WeightKg <= 0 || *req.WeightKg > 700) {
		return nil, fmt.Errorf("weight must be between 0 and 700 kg")
	}

	history, err := s.repo.Upsert(ctx, patientID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update medical history: %w", err)
	}
	return history, nil
}
