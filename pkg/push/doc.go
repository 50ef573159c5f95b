// Package push delivers push notifications through Firebase Cloud
// Messaging.
//
// Sends target individual device tokens; recipient-to-token resolution is
// the caller's job. Unregistered tokens surface as ErrTokenUnregistered so
// the caller can prune them from the token store.
package push
