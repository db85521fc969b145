package profile

import "time"

// UpdateProfileRequest represents the request to update the caller's profile
type UpdateProfileRequest struct {
	FullName    *string `json:"full_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"` // Format: YYYY-MM-DD
	Gender      *string `json:"gender,omitempty"`
	Address     *string `json:"address,omitempty"`
}

// ProfileResponse represents the profile data returned to clients
type ProfileResponse struct {
	ID          string     `json:"id"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	DateOfBirth *string    `json:"date_of_birth,omitempty"`
	Gender      string     `json:"gender,omitempty"`
	Address     string     `json:"address,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
