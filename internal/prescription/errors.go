package prescription

import "errors"

var (
	ErrMissingPatient   = errors.New("patient_id and patient_name are required")
	ErrMissingDiagnosis = errors.New("diagnosis is required")
	ErrNoMedicines      = errors.New("at least one medicine is required")
	ErrInvalidMedicine  = errors.New("each medicine requires a name and dosage")
	ErrInvalidAge       = errors.New("patient_age must be between 0 and 150")
	ErrNotFound         = errors.New("prescription not found")
	ErrNotAuthorized    = errors.New("prescription belongs to another user")
)
