package medhistory

import (
	"context"
	"database/sql"
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

// GetByPatient fetches the patient's history row, nil when none exists yet.
func (r *Repository) GetByPatient(ctx context.Context, patientID string) (*HistoryResponse, error) {
	query := `
		SELECT id, patient_id, chronic_conditions, allergies, current_medications,
		       past_surgeries, family_history, blood_type, smoking_status,
		       alcohol_consumption, exercise_frequency, height_cm, weight_kg,
		       created_at, updated_at
		FROM patient_medical_history
		WHERE patient_id = $1
	`

	var h HistoryResponse
	var bloodType, smokingStatus, alcohol, exercise sql.NullString
	var heightCm, weightKg sql.NullFloat64
	var updatedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, patientID).Scan(
		&h.ID,
		&h.PatientID,
		pq.Array(&h.ChronicConditions),
		pq.Array(&h.Allergies),
		pq.Array(&h.CurrentMedications),
		pq.Array(&h.PastSurgeries),
		pq.Array(&h.FamilyHistory),
		&bloodType,
		&smokingStatus,
		&alcohol,
		&exercise,
		&heightCm,
		&weightKg,
		&h.CreatedAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query medical history: %w", err)
	}

	if bloodType.Valid {
		h.BloodType = bloodType.String
	}
	if smokingStatus.Valid {
		h.SmokingStatus = smokingStatus.String
	}
	if alcohol.Valid {
		h.AlcoholConsumption = alcohol.String
	}
	if exercise.Valid {
		h.ExerciseFrequency = exercise.String
	}
	if heightCm.Valid {
		h.HeightCm = &heightCm.Float64
	}
	if weightKg.Valid {
		h.WeightKg = &weightKg.Float64
	}
	if updatedAt.Valid {
		h.UpdatedAt = &updatedAt.Time
	}

	return &h, nil
}

// Upsert creates or replaces the patient's history row.
func (r *Repository) Upsert(ctx context.Context, patientID string, req UpdateHistoryRequest) (*HistoryResponse, error) {
	query := `
		INSERT INTO patient_medical_history
		(id, patient_id, chronic_conditions, allergies, current_medications, past_surgeries,
		 family_history, blood_type, smoking_status, alcohol_consumption, exercise_frequency,
		 height_cm, weight_kg, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (patient_id) DO UPDATE SET
			chronic_conditions = EXCLUDED.chronic_conditions,
			allergies = EXCLUDED.allergies,
			current_medications = EXCLUDED.current_medications,
			past_surgeries = EXCLUDED.past_surgeries,
			family_history = EXCLUDED.family_history,
			blood_type = EXCLUDED.blood_type,
			smoking_status = EXCLUDED.smoking_status,
			alcohol_consumption = EXCLUDED.alcohol_consumption,
			exercise_frequency = EXCLUDED.exercise_frequency,
			height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg,
			updated_at = now()
	`

	_, err := r.db.ExecContext(ctx, query,
		uuid.New(),
		patientID,
		pq.Array(req.ChronicConditions),
		pq.Array(req.Allergies),
		pq.Array(req.CurrentMedications),
		pq.Array(req.PastSurgeries),
		pq.Array(req.FamilyHistory),
		nullIfEmpty(req.BloodType),
		nullIfEmpty(req.SmokingStatus),
		nullIfEmpty(req.AlcoholConsumption),
		nullIfEmpty(req.ExerciseFrequency),
		req.HeightCm,
		req.WeightKg,
		time.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert medical history: %w", err)
	}

	return r.GetByPatient(ctx, patientID)
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
