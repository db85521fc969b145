package symptomcheck

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetHistorySnapshot fetches the caller's medical-history row. A patient has
// at most one; no row is not an error.
func (r *Repository) GetHistorySnapshot(ctx context.Context, userID string) (*HistorySnapshot, error) {
	query := `
		SELECT chronic_conditions, allergies, current_medications, past_surgeries,
		       blood_type, smoking_status, height_cm, weight_kg
		FROM patient_medical_history
		WHERE patient_id = $1
	`

	var snapshot HistorySnapshot
	var bloodType sql.NullString
	var smokingStatus sql.NullString
	var heightCm sql.NullFloat64
	var weightKg sql.NullFloat64

	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		pq.Array(&snapshot.ChronicConditions),
		pq.Array(&snapshot.Allergies),
		pq.Array(&snapshot.CurrentMedications),
		pq.Array(&snapshot.PastSurgeries),
		&bloodType,
		&smokingStatus,
		&heightCm,
		&weightKg,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query medical history: %w", err)
	}

	if bloodType.Valid {
		snapshot.BloodType = bloodType.String
	}
	if smokingStatus.Valid {
		snapshot.SmokingStatus = smokingStatus.String
	}
	if heightCm.Valid {
		snapshot.HeightCm = &heightCm.Float64
	}
	if weightKg.Valid {
		snapshot.WeightKg = &weightKg.Float64
	}

	return &snapshot, nil
}

// ListRecentChecks returns the caller's most recent symptom checks, newest
// first, capped at limit.
func (r *Repository) ListRecentChecks(ctx context.Context, userID string, limit int) ([]PastCheck, error) {
	query := `
		SELECT symptoms, conditions_identified, severity_level, created_at
		FROM symptom_checks
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query symptom checks: %w", err)
	}
	defer rows.Close()

	var checks []PastCheck
	for rows.Next() {
		var check PastCheck
		var severityLevel sql.NullString

		err := rows.Scan(
			&check.Symptoms,
			pq.Array(&check.ConditionsIdentified),
			&severityLevel,
			&check.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan symptom check: %w", err)
		}
		if severityLevel.Valid {
			check.SeverityLevel = severityLevel.String
		}

		checks = append(checks, check)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating symptom checks: %w", err)
	}

	return checks, nil
}

// InsertCheck appends one history row. Rows are never updated or deleted by
// the service.
func (r *Repository) InsertCheck(ctx context.Context, rec Record) error {
	analysisJSON, err := json.Marshal(rec.Analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	query := `
		INSERT INTO symptom_checks
		(id, user_id, symptoms, duration, severity, age_range, ai_analysis, conditions_identified, severity_level, is_emergency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = r.db.ExecContext(ctx, query,
		uuid.New(),
		rec.UserID,
		rec.Symptoms,
		nullIfEmpty(rec.Duration),
		nullIfEmpty(rec.Severity),
		nullIfEmpty(rec.AgeRange),
		analysisJSON,
		pq.Array(rec.ConditionsIdentified),
		rec.SeverityLevel,
		rec.IsEmergency,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert symptom check: %w", err)
	}

	return nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
