// Package logger provides slog-based structured logging for the dispatch
// pipeline.
//
// The factory builds a *slog.Logger with environment-appropriate defaults
// and optional context extractors that inject request-scoped attributes at
// log time. Attr helpers keep domain attribute keys consistent across
// packages:
//
//	log := logger.New(logger.WithProduction("dispatch"))
//	log.InfoContext(ctx, "notification sent",
//		logger.NotificationID(rec.ID),
//		logger.RecipientID(rec.RecipientID),
//		logger.Channel(ch),
//	)
package logger
