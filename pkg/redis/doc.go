// Package redis provides the Redis client used by the dispatch pipeline:
// connection establishment with retry, a healthcheck probe, and a
// best-effort distributed lock for the retry sweeper.
//
// The lock keeps multiple sweeper instances from re-attempting the same due
// notifications simultaneously. It is advisory: losing it only costs a
// duplicate attempt, never data.
package redis
