package prescription

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const prescriptionColumns = `id, doctor_id, patient_id, patient_name, patient_age, diagnosis, medicines, advice, prescription_date, created_at`

// Create inserts a new prescription and returns the stored row
func (r *Repository) Create(ctx context.Context, doctorID string, req CreatePrescriptionRequest) (*PrescriptionResponse, error) {
	medicinesJSON, err := json.Marshal(req.Medicines)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal medicines: %w", err)
	}

	query := `
		INSERT INTO prescriptions (id, doctor_id, patient_id, patient_name, patient_age, diagnosis, medicines, advice, prescription_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + prescriptionColumns

	row := r.db.QueryRowContext(ctx, query,
		uuid.New().String(), doctorID, req.PatientID, req.PatientName,
		req.PatientAge, req.Diagnosis, medicinesJSON, nullIfEmpty(req.Advice),
		time.Now().UTC(),
	)

	p, err := scanPrescription(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create prescription: %w", err)
	}
	return p, nil
}

// Get fetches a single prescription by id
func (r *Repository) Get(ctx context.Context, id string) (*PrescriptionResponse, error) {
	query := `SELECT ` + prescriptionColumns + ` FROM prescriptions WHERE id = $1`

	p, err := scanPrescription(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prescription: %w", err)
	}
	return p, nil
}

// ListByPatient returns a page of prescriptions issued to the patient
func (r *Repository) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]PrescriptionResponse, int, error) {
	return r.list(ctx, "patient_id", patientID, limit, offset)
}

// ListByDoctor returns a page of prescriptions issued by the doctor
func (r *Repository) ListByDoctor(ctx context.Context, doctorID string, limit, offset int) ([]PrescriptionResponse, int, error) {
	return r.list(ctx, "doctor_id", doctorID, limit, offset)
}

func (r *Repository) list(ctx context.Context, column, id string, limit, offset int) ([]PrescriptionResponse, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM prescriptions WHERE ` + column + ` = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, id).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count prescriptions: %w", err)
	}

	query := `SELECT ` + prescriptionColumns + `
		FROM prescriptions
		WHERE ` + column + ` = $1
		ORDER BY prescription_date DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, id, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list prescriptions: %w", err)
	}
	defer rows.Close()

	prescriptions := []PrescriptionResponse{}
	for rows.Next() {
		p, err := scanPrescription(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan prescription: %w", err)
		}
		prescriptions = append(prescriptions, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate prescriptions: %w", err)
	}
	return prescriptions, total, nil
}

// GetVerification joins the issuing doctor's profile for the public authenticity view
func (r *Repository) GetVerification(ctx context.Context, id string) (*VerificationResponse, error) {
	query := `
		SELECT p.id, COALESCE(pr.full_name, ''), COALESCE(dc.specialization, ''), p.patient_name, p.diagnosis, p.prescription_date
		FROM prescriptions p
		LEFT JOIN profiles pr ON pr.id = p.doctor_id
		LEFT JOIN doctor_credentials dc ON dc.doctor_id = p.doctor_id
		WHERE p.id = $1`

	var v VerificationResponse
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.PrescriptionID, &v.DoctorName, &v.Specialization,
		&v.PatientName, &v.Diagnosis, &v.PrescriptionDate,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to verify prescription: %w", err)
	}
	v.Valid = true
	return &v, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPrescription(row rowScanner) (*PrescriptionResponse, error) {
	var p PrescriptionResponse
	var medicinesJSON []byte
	var advice sql.NullString

	err := row.Scan(&p.ID, &p.DoctorID, &p.PatientID, &p.PatientName,
		&p.PatientAge, &p.Diagnosis, &medicinesJSON, &advice,
		&p.PrescriptionDate, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(medicinesJSON, &p.Medicines); err != nil {
		return nil, fmt.Errorf("failed to unmarshal medicines: %w", err)
	}
	if advice.Valid {
		p.Advice = advice.String
	}
	return &p, nil
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
