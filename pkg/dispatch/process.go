package dispatch

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dispatchkit/dispatchkit/pkg/audit"
	"github.com/dispatchkit/dispatchkit/pkg/channel"
	"github.com/dispatchkit/dispatchkit/pkg/notification"
	"github.com/dispatchkit/dispatchkit/pkg/render"
	"github.com/dispatchkit/dispatchkit/pkg/template"
)

// Process dispatches one notification: resolves the template, renders the
// content, persists the record, then attempts every resolved channel in
// priority order. A channel failure never blocks the channels after it; the
// returned record reflects the outcome of the last attempt.
//
// An unknown or inactive template aborts before any record is created.
// Persistence failures abort and surface as ErrPersistence.
func (s *Service) Process(ctx context.Context, payload notification.Payload) (*notification.Record, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	tpl, err := s.templates.Get(payload.TemplateKey())
	if err != nil {
		return nil, err
	}

	primary, err := render.Content(tpl.PrimaryContent(), payload.Variables, s.renderOpts...)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rec := &notification.Record{
		ID:          uuid.New().String(),
		RecipientID: payload.RecipientID,
		Title:       primary.Title,
		Message:     primary.Body,
		DeepLink:    primary.DeepLink,
		Type:        payload.Type,
		Priority:    payload.Priority,
		Status:      notification.StatusPending,
		TemplateID:  tpl.ID,
		Metadata:    payload.Metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if payload.Priority == 0 {
		rec.Priority = tpl.Priority
	}

	if err := s.records.Create(ctx, *rec); err != nil {
		return nil, errors.Join(ErrPersistence, err)
	}

	channels := payload.Channels
	if len(channels) == 0 {
		channels = payload.Type.DefaultChannels()
	}

	for _, ch := range channels {
		if err := s.attempt(ctx, rec, tpl, payload, ch); err != nil {
			return rec, err
		}
	}

	return rec, nil
}

// attempt performs one channel delivery attempt, updates the record, and
// writes exactly one audit entry. Only persistence failures are returned;
// transport failures are absorbed into the record's status.
func (s *Service) attempt(ctx context.Context, rec *notification.Record, tpl template.Template, payload notification.Payload, ch notification.Channel) error {
	content := s.channelContent(rec, tpl, payload.Variables, ch)

	sendErr := s.send(ctx, rec, ch, content)
	if sendErr == nil {
		if err := s.tracker.MarkSent(rec, ch); err != nil {
			sendErr = err
		}
	}

	if sendErr == nil {
		s.log.InfoContext(ctx, "notification sent",
			slog.String("notification_id", rec.ID),
			slog.String("recipient_id", rec.RecipientID),
			slog.String("channel", string(ch)),
		)
		s.appendAudit(ctx, rec.ID, audit.EventSent,
			audit.WithRecipient(rec.RecipientID),
			audit.WithChannel(ch),
			audit.WithStatus(rec.Status),
		)
		return s.persist(ctx, rec)
	}

	override := -1
	if v, ok := payload.MaxRetries[ch]; ok && v >= 0 {
		override = v
	}
	if err := s.tracker.MarkFailed(rec, ch, sendErr, override); err != nil {
		return err
	}

	// No recipient address and missing sender wiring cannot be fixed by
	// retrying; leave those failed without a scheduled retry.
	scheduled := false
	if !errors.Is(sendErr, channel.ErrNoRecipient) && !errors.Is(sendErr, channel.ErrSenderNotRegistered) {
		var err error
		scheduled, err = s.tracker.ScheduleRetry(rec, ch)
		if err != nil {
			return err
		}
	}
	if !scheduled {
		// Terminal failure: clear any schedule left by an earlier channel so
		// the sweep does not re-attempt this one.
		rec.NextRetryAt = nil
	}

	s.log.WarnContext(ctx, "notification channel attempt failed",
		slog.String("notification_id", rec.ID),
		slog.String("recipient_id", rec.RecipientID),
		slog.String("channel", string(ch)),
		slog.Bool("retry_scheduled", scheduled),
		slog.Any("error", sendErr),
	)
	s.appendAudit(ctx, rec.ID, audit.EventFailed,
		audit.WithRecipient(rec.RecipientID),
		audit.WithChannel(ch),
		audit.WithStatus(rec.Status),
		audit.WithDetails(sendErr.Error()),
		audit.WithMetadata("retry_scheduled", scheduled),
	)
	return s.persist(ctx, rec)
}

// channelContent renders the template's dedicated content for the channel,
// falling back to the record's stored primary content when the template has
// none or rendering fails.
func (s *Service) channelContent(rec *notification.Record, tpl template.Template, vars map[string]any, ch notification.Channel) notification.Content {
	stored := notification.Content{
		Title:    rec.Title,
		Body:     rec.Message,
		DeepLink: rec.DeepLink,
	}

	raw, ok := tpl.Content(ch)
	if !ok {
		return stored
	}
	rendered, err := render.Content(raw, vars, s.renderOpts...)
	if err != nil {
		return stored
	}
	return rendered
}

func (s *Service) send(ctx context.Context, rec *notification.Record, ch notification.Channel, content notification.Content) error {
	sender, err := s.senders.Sender(ch)
	if err != nil {
		return err
	}
	return sender.Send(ctx, rec, content)
}

func (s *Service) persist(ctx context.Context, rec *notification.Record) error {
	if err := s.records.Update(ctx, *rec); err != nil {
		return errors.Join(ErrPersistence, err)
	}
	return nil
}
