// Package audit provides an append-only delivery log for notifications.
//
// Every channel attempt, retry, and read receipt is recorded as an Entry
// keyed by the notification ID. The notification record itself is mutable
// and only reflects the latest state; the audit log keeps the history.
//
// # Usage
//
//	store := audit.NewMemoryStorage()
//	log := audit.NewLogger(store)
//
//	err := log.Append(ctx, rec.ID, audit.EventSent,
//		audit.WithRecipient(rec.RecipientID),
//		audit.WithChannel(notification.ChannelPush),
//		audit.WithStatus(notification.StatusSent),
//	)
//
// Reading it back:
//
//	reader := audit.NewReader(store)
//	trail, err := reader.Trail(ctx, rec.ID)
//
// Exactly one entry is written per Append call, so callers control the
// granularity: the dispatcher writes one entry per channel attempt.
package audit
