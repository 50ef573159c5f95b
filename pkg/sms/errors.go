package sms

import "errors"

var (
	// ErrInvalidConfig indicates missing or malformed SNS configuration.
	ErrInvalidConfig = errors.New("sms: invalid config")

	// ErrInitFailed indicates the AWS config or SNS client could not be
	// created.
	ErrInitFailed = errors.New("sms: init failed")

	// ErrSendFailed indicates SNS rejected or failed the publish.
	ErrSendFailed = errors.New("sms: send failed")
)
