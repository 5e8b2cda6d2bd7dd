package domain

import "errors"

// Sentinel errors shared across repositories, services, and controllers.
// Repositories translate driver-level failures (no rows, unique violations)
// into these; controllers map them to HTTP outcomes with errors.Is.
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrEnrollmentNotFound  = errors.New("enrollment not found")

	ErrDuplicateEmail      = errors.New("email already registered")
	ErrDuplicateEnrollment = errors.New("participant already enrolled in this event")

	// ErrInvalidID marks an identifier that is not a well-formed UUID. It is
	// rejected before any storage access and is distinct from not-found.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrInvalidInput marks malformed or missing request fields.
	ErrInvalidInput = errors.New("invalid input")
)
