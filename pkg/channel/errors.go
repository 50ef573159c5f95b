package channel

import "errors"

var (
	// ErrNoRecipient indicates the recipient has no usable address for the
	// channel (no active tokens, no email, no phone number). Terminal for
	// the channel: retrying cannot succeed until the recipient's contact
	// data changes.
	ErrNoRecipient = errors.New("channel: no recipient address")

	// ErrSendFailed indicates the transport failed the delivery attempt.
	ErrSendFailed = errors.New("channel: send failed")

	// ErrSenderNotRegistered indicates no sender is wired for the channel.
	ErrSenderNotRegistered = errors.New("channel: sender not registered")

	// ErrAlreadyRegistered indicates a second sender for the same channel.
	ErrAlreadyRegistered = errors.New("channel: sender already registered")

	// ErrUnknownChannel indicates a sender reporting an unrecognized channel.
	ErrUnknownChannel = errors.New("channel: unknown channel")
)
