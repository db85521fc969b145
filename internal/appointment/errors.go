package appointment

import "errors"

var (
	ErrMissingReason = errors.New("reason is required")
	ErrMissingDate   = errors.New("appointment date is required")
	ErrPastDate      = errors.New("appointment date must be in the future")
	ErrInvalidStatus = errors.New("invalid appointment status")
	ErrNotOwner      = errors.New("appointment does not belong to this user")
)
