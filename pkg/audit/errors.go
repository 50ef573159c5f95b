package audit

import "errors"

var (
	// ErrStorageNotAvailable indicates the storage backend is unavailable
	ErrStorageNotAvailable = errors.New("storage backend is unavailable")

	// ErrEntryValidation indicates entry validation failed
	ErrEntryValidation = errors.New("entry validation failed")
)
