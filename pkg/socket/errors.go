package socket

import "errors"

var (
	// ErrHubClosed is returned when emitting on a closed hub.
	ErrHubClosed = errors.New("socket: hub is closed")

	// ErrNoSubscribers is returned when no client is listening on the key.
	// Callers treat this as informational: socket delivery is best-effort.
	ErrNoSubscribers = errors.New("socket: no subscribers")
)
