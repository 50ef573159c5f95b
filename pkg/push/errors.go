package push

import "errors"

var (
	// ErrInvalidConfig indicates missing or malformed FCM configuration.
	ErrInvalidConfig = errors.New("push: invalid config")

	// ErrInitFailed indicates the Firebase app or messaging client could
	// not be created.
	ErrInitFailed = errors.New("push: init failed")

	// ErrSendFailed indicates FCM rejected or failed the send.
	ErrSendFailed = errors.New("push: send failed")

	// ErrTokenUnregistered indicates the device token is no longer valid
	// and should be deactivated.
	ErrTokenUnregistered = errors.New("push: token unregistered")
)
