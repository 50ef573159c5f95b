// Package notification defines the shared domain model for the dispatch
// pipeline: channels, types, statuses, the caller-facing Payload, the
// persisted Record, and the record Storage contract.
//
// The package holds no delivery or orchestration logic; it exists so that
// template, channel, status, audit, and dispatch can agree on one data
// model without importing each other.
//
// # Record lifecycle
//
// A Record is created once per dispatch call with StatusPending and is
// mutated in place as channel attempts complete. The Channel field always
// names the last-attempted channel and Status the outcome of that attempt.
// Records are never deleted here; retention is an external policy.
//
// # Storage
//
// Storage is pluggable. MemoryStorage is provided for development and
// tests; the mongodb package provides the production implementation.
package notification
