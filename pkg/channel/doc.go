// Package channel implements per-channel notification senders and the
// registry the dispatcher resolves them from.
//
// Each sender owns one channel's delivery mechanics: resolving the
// recipient's address from the directory, shaping the rendered content for
// the transport, and classifying failures. Two failure classes matter to
// callers:
//
//   - ErrNoRecipient: the recipient cannot be reached on this channel at
//     all (no tokens, no email, no phone). Retrying is pointless.
//   - ErrSendFailed: the transport failed; the attempt may be retried per
//     the channel's retry policy.
//
// Senders never touch notification status or the audit log; that is the
// dispatcher's job.
package channel
