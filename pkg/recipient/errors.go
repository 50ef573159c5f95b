package recipient

import "errors"

var (
	// ErrNotFound is returned when a recipient or a requested address is unknown.
	ErrNotFound = errors.New("recipient not found")

	// ErrTokenNotFound is returned when a device token does not exist.
	ErrTokenNotFound = errors.New("device token not found")

	// ErrInvalidToken indicates a device token is missing required fields.
	ErrInvalidToken = errors.New("invalid device token")
)
