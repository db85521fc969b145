package profile

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type mockRepository struct {
	getProfileFunc    func(ctx context.Context, userID string) (*ProfileResponse, error)
	updateProfileFunc func(ctx context.Context, userID string, req UpdateProfileRequest) (*ProfileResponse, error)
}

func (m *mockRepository) GetProfile(ctx context.Context, userID string) (*ProfileResponse, error) {
	return m.getProfileFunc(ctx, userID)
}

func (m *mockRepository) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*ProfileResponse, error) {
	return m.updateProfileFunc(ctx, userID, req)
}

func strPtr(s string) *string { return &s }

func TestGetMyProfile(t *testing.T) {
	repo := &mockRepository{
		getProfileFunc: func(ctx context.Context, userID string) (*ProfileResponse, error) {
			if userID != "user-1" {
				t.Errorf("Expected user-1, got %s", userID)
			}
			return &ProfileResponse{ID: "user-1", FullName: "Jane Doe", Email: "jane@example.com"}, nil
		},
	}

	service := NewService(repo)

	p, err := service.GetMyProfile(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if p.FullName != "Jane Doe" {
		t.Errorf("Unexpected profile: %+v", p)
	}
}

func TestGetMyProfile_RepoError(t *testing.T) {
	repo := &mockRepository{
		getProfileFunc: func(ctx context.Context, userID string) (*ProfileResponse, error) {
			return nil, errors.New("connection refused")
		},
	}

	service := NewService(repo)

	_, err := service.GetMyProfile(context.Background(), "user-1")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !strings.Contains(err.Error(), "failed to get profile") {
		t.Errorf("Expected wrapped error, got: %v", err)
	}
}

func TestUpdateMyProfile_Validation(t *testing.T) {
	service := NewService(&mockRepository{})

	cases := []struct {
		name string
		req  UpdateProfileRequest
	}{
		{"empty full name", UpdateProfileRequest{FullName: strPtr("")}},
		{"bad date format", UpdateProfileRequest{DateOfBirth: strPtr("14/03/1990")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.UpdateMyProfile(context.Background(), "user-1", tc.req)
			if err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestUpdateMyProfile_Success(t *testing.T) {
	repo := &mockRepository{
		updateProfileFunc: func(ctx context.Context, userID string, req UpdateProfileRequest) (*ProfileResponse, error) {
			return &ProfileResponse{ID: userID, FullName: *req.FullName, DateOfBirth: req.DateOfBirth}, nil
		},
	}

	service := NewService(repo)

	p, err := service.UpdateMyProfile(context.Background(), "user-1", UpdateProfileRequest{
		FullName:    strPtr("Jane Smith"),
		DateOfBirth: strPtr("1990-03-14"),
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if p.FullName != "Jane Smith" {
		t.Errorf("Unexpected profile: %+v", p)
	}
}
