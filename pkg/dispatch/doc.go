// Package dispatch is the notification pipeline's entry point. It turns a
// caller's Payload into a persisted Record and drives it through template
// rendering, channel fan-out, retry scheduling, and the audit trail.
//
// # Flow
//
// Process resolves the template for the payload's event, renders the
// content, persists a pending record, then attempts each resolved channel
// sequentially in priority order. Channel attempts are independent: one
// channel failing never stops the rest. Every attempt updates the record and
// appends exactly one audit entry.
//
// Retries are scheduled, not performed inline. A failed attempt with budget
// left moves the record back to pending with a backoff-computed NextRetryAt;
// RetryDue, called on whatever cadence the deployment chooses, re-attempts
// everything due.
//
// # Wiring
//
//	senders := channel.NewRegistry().MustRegister(
//		channel.NewPushSender(directory, fcm),
//		channel.NewInAppSender(),
//		channel.NewSocketSender(hub),
//		channel.NewEmailSender(directory, mailer),
//		channel.NewSMSSender(directory, texter),
//	)
//
//	svc := dispatch.New(records, template.DefaultRegistry(), senders,
//		dispatch.WithAuditLogger(audit.NewLogger(auditStore)),
//		dispatch.WithLogger(log),
//		dispatch.WithLocker(locker),
//	)
//
//	rec, err := svc.Process(ctx, notification.Payload{
//		RecipientID: "user-1",
//		Event:       "ORDER_PLACED",
//		Type:        notification.TypeTransactional,
//		Variables:   map[string]any{"order_id": "42"},
//	})
package dispatch
