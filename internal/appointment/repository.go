package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const appointmentColumns = `id, patient_id, doctor_id, appointment_date, reason, status,
	diagnosis, prescription, notes, follow_up_date, created_at, updated_at`

// Create inserts a new pending appointment for the patient.
func (r *Repository) Create(ctx context.Context, patientID string, req BookAppointmentRequest) (*AppointmentResponse, error) {
	query := fmt.Sprintf(`
		INSERT INTO appointments
		(id, patient_id, doctor_id, appointment_date, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`, appointmentColumns)

	row := r.db.QueryRowContext(ctx, query,
		uuid.New(),
		patientID,
		nullIfEmpty(req.DoctorID),
		req.AppointmentDate,
		req.Reason,
		StatusPending,
		time.Now(),
	)

	appt, err := scanAppointment(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert appointment: %w", err)
	}
	return appt, nil
}

// ListByPatient returns a page of the patient's appointments, newest first.
func (r *Repository) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]AppointmentResponse, int, error) {
	return r.list(ctx, "patient_id", patientID, limit, offset)
}

// ListByDoctor returns a page of the doctor's schedule, newest first.
func (r *Repository) ListByDoctor(ctx context.Context, doctorID string, limit, offset int) ([]AppointmentResponse, int, error) {
	return r.list(ctx, "doctor_id", doctorID, limit, offset)
}

func (r *Repository) list(ctx context.Context, column, id string, limit, offset int) ([]AppointmentResponse, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM appointments WHERE %s = $1`, column)
	if err := r.db.QueryRowContext(ctx, countQuery, id).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count appointments: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM appointments
		WHERE %s = $1
		ORDER BY appointment_date DESC
		LIMIT $2 OFFSET $3
	`, appointmentColumns, column)

	rows, err := r.db.QueryContext(ctx, query, id, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	var appointments []AppointmentResponse
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, *appt)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating appointments: %w", err)
	}

	return appointments, total, nil
}

// Get fetches a single appointment by ID.
func (r *Repository) Get(ctx context.Context, id string) (*AppointmentResponse, error) {
	query := fmt.Sprintf(`SELECT %s FROM appointments WHERE id = $1`, appointmentColumns)

	appt, err := scanAppointment(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("appointment not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query appointment: %w", err)
	}
	return appt, nil
}

// Update applies the non-nil fields of req to the appointment.
func (r *Repository) Update(ctx context.Context, id string, req UpdateAppointmentRequest) (*AppointmentResponse, error) {
	var updates []string
	var args []interface{}
	argIndex := 1

	if req.Status != nil {
		updates = append(updates, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *req.Status)
		argIndex++
	}
	if req.Diagnosis != nil {
		updates = append(updates, fmt.Sprintf("diagnosis = $%d", argIndex))
		args = append(args, *req.Diagnosis)
		argIndex++
	}
	if req.Prescription != nil {
		updates = append(updates, fmt.Sprintf("prescription = $%d", argIndex))
		args = append(args, *req.Prescription)
		argIndex++
	}
	if req.Notes != nil {
		updates = append(updates, fmt.Sprintf("notes = $%d", argIndex))
		args = append(args, *req.Notes)
		argIndex++
	}
	if req.FollowUpDate != nil {
		updates = append(updates, fmt.Sprintf("follow_up_date = $%d", argIndex))
		args = append(args, *req.FollowUpDate)
		argIndex++
	}

	if len(updates) == 0 {
		return r.Get(ctx, id)
	}

	updates = append(updates, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE appointments SET %s WHERE id = $%d
		RETURNING %s
	`, strings.Join(updates, ", "), argIndex, appointmentColumns)

	appt, err := scanAppointment(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("appointment not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return appt, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*AppointmentResponse, error) {
	var a AppointmentResponse
	var doctorID, diagnosis, prescription, notes sql.NullString
	var followUp sql.NullTime
	var updatedAt sql.NullTime

	err := row.Scan(
		&a.ID,
		&a.PatientID,
		&doctorID,
		&a.AppointmentDate,
		&a.Reason,
		&a.Status,
		&diagnosis,
		&prescription,
		&notes,
		&followUp,
		&a.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if doctorID.Valid {
		a.DoctorID = doctorID.String
	}
	if diagnosis.Valid {
		a.Diagnosis = diagnosis.String
	}
	if prescription.Valid {
		a.Prescription = prescription.String
	}
	if notes.Valid {
		a.Notes = notes.String
	}
	if followUp.Valid {
		a.FollowUpDate = &followUp.Time
	}
	if updatedAt.Valid {
		a.UpdatedAt = &updatedAt.Time
	}

	return &a, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
