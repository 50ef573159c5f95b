// Package mongo provides MongoDB persistence for the dispatch pipeline.
//
// It holds the shared client constructor plus the storage implementations
// backed by the following collections:
//
//	notifications - notification.Storage (records, retry sweep, unread)
//	recipients    - recipient.Directory contact lookups
//	device_tokens - recipient.TokenStore push token registry
//	audit_log     - audit.Storage append-only delivery log
//
// Call EnsureIndexes on each storage at startup; the query paths assume the
// indexes exist.
package mongo
