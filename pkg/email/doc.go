// Package email sends notification emails through Postmark.
//
// The production implementation wraps Postmark's transactional API; for
// local development, DevSender writes outbound emails to disk so no real
// email service is needed.
//
//	sender := email.MustNewPostmarkSender(cfg)
//	err := sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "user@example.com",
//		Subject:  "Order Confirmed",
//		BodyHTML: html,
//		BodyText: text,
//		Tag:      "ORDER_PLACED",
//	})
package email
