package symptomcheck

import "errors"

var (
	ErrMissingSymptoms = errors.New("symptoms are required")
)
