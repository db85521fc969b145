package profile

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetProfile fetches a profile by user ID.
func (r *Repository) GetProfile(ctx context.Context, userID string) (*ProfileResponse, error) {
	query := `
		SELECT id, full_name, email, phone, date_of_birth, gender, address, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	var p ProfileResponse
	var phone, gender, address sql.NullString
	var dob sql.NullString
	var updatedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID,
		&p.FullName,
		&p.Email,
		&phone,
		&dob,
		&gender,
		&address,
		&p.CreatedAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("profile not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	if phone.Valid {
		p.Phone = phone.String
	}
	if dob.Valid {
		p.DateOfBirth = &dob.String
	}
	if gender.Valid {
		p.Gender = gender.String
	}
	if address.Valid {
		p.Address = address.String
	}
	if updatedAt.Valid {
		p.UpdatedAt = &updatedAt.Time
	}

	return &p, nil
}

// UpdateProfile applies the non-nil fields of req to the caller's profile.
func (r *Repository) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*ProfileResponse, error) {
	var updates []string
	var args []interface{}
	argIndex := 1

	if req.FullName != nil {
		updates = append(updates, fmt.Sprintf("full_name = $%d", argIndex))
		args = append(args, *req.FullName)
		argIndex++
	}
	if req.Phone != nil {
		updates = append(updates, fmt.Sprintf("phone = $%d", argIndex))
		args = append(args, *req.Phone)
		argIndex++
	}
	if req.DateOfBirth != nil {
		updates = append(updates, fmt.Sprintf("date_of_birth = $%d", argIndex))
		args = append(args, *req.DateOfBirth)
		argIndex++
	}
	if req.Gender != nil {
		updates = append(updates, fmt.Sprintf("gender = $%d", argIndex))
		args = append(args, *req.Gender)
		argIndex++
	}
	if req.Address != nil {
		updates = append(updates, fmt.Sprintf("address = $%d", argIndex))
		args = append(args, *req.Address)
		argIndex++
	}

	if len(updates) == 0 {
		return r.GetProfile(ctx, userID)
	}

	updates = append(updates, "updated_at = now()")
	args = append(args, userID)

	query := fmt.Sprintf(`UPDATE profiles SET %s WHERE id = $%d`,
		strings.Join(updates, ", "), argIndex)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("profile not found")
	}

	return r.GetProfile(ctx, userID)
}
