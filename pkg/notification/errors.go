package notification

import "errors"

var (
	// ErrRecordNotFound is returned when a record does not exist in storage.
	ErrRecordNotFound = errors.New("notification record not found")

	// ErrDuplicateRecord is returned when creating a record whose ID already exists.
	ErrDuplicateRecord = errors.New("notification record already exists")

	// ErrInvalidRecord indicates a record is missing required fields.
	ErrInvalidRecord = errors.New("invalid notification record")

	// ErrInvalidPayload indicates a dispatch payload failed validation.
	ErrInvalidPayload = errors.New("invalid notification payload")
)
