package errorx

import "errors"

// Sentinel errors shared between the storage layer and the HTTP handlers.
// Handlers translate them into status codes at the request boundary.
var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")

	// ErrAdminExists is returned when an admin registration collides with an
	// existing admin on email or aadhaar.
	ErrAdminExists = errors.New("admin with given email or aadhaar already exists")

	// ErrInvalidAadhaar is returned when an aadhaar number is not exactly 12 digits.
	ErrInvalidAadhaar = errors.New("invalid aadhaar number: must be exactly 12 digits")

	// ErrMissingFields is returned when a required form field is absent.
	ErrMissingFields = errors.New("all fields are required")

	// ErrInvalidCategory is returned when a listing submission names an
	// unknown category.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrSessionNotFound is returned when a session id is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")
)
