package doctor

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ListVerified returns verified doctors, optionally filtered by specialization
func (r *Repository) ListVerified(ctx context.Context, specialization string) ([]DoctorResponse, error) {
	query := `
		SELECT dc.doctor_id, COALESCE(pr.full_name, ''), dc.specialization, dc.license_number, dc.years_of_experience
		FROM doctor_credentials dc
		LEFT JOIN profiles pr ON pr.id = dc.doctor_id
		WHERE dc.verified = TRUE`
	args := []interface{}{}
	if specialization != "" {
		query += ` AND dc.specialization = $1`
		args = append(args, specialization)
	}
	query += ` ORDER BY pr.full_name ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	defer rows.Close()

	doctors := []DoctorResponse{}
	for rows.Next() {
		d := DoctorResponse{Verified: true}
		if err := rows.Scan(&d.ID, &d.FullName, &d.Specialization, &d.LicenseNumber, &d.YearsOfExperience); err != nil {
			return nil, fmt.Errorf("failed to scan doctor: %w", err)
		}
		doctors = append(doctors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate doctors: %w", err)
	}
	return doctors, nil
}
