package dispatch

import "errors"

var (
	// ErrPersistence wraps record storage failures. Unlike transport
	// failures, these abort the dispatch flow: without a persisted record
	// the retry and audit guarantees do not hold.
	ErrPersistence = errors.New("dispatch: persistence failure")
)
