package dispatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/dispatchkit/dispatchkit/pkg/audit"
	"github.com/dispatchkit/dispatchkit/pkg/channel"
	"github.com/dispatchkit/dispatchkit/pkg/notification"
	"github.com/dispatchkit/dispatchkit/pkg/render"
	"github.com/dispatchkit/dispatchkit/pkg/status"
	"github.com/dispatchkit/dispatchkit/pkg/template"
)

// Locker serializes the retry sweep across service instances. Satisfied by
// *redis.Locker; nil disables locking for single-instance deployments.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(context.Context) error, ok bool, err error)
}

// Service orchestrates notification dispatch: template resolution,
// rendering, record persistence, channel fan-out, status tracking, and the
// audit trail.
type Service struct {
	records    notification.Storage
	templates  *template.Registry
	senders    *channel.Registry
	tracker    *status.Tracker
	auditLog   audit.Logger
	log        *slog.Logger
	renderOpts []render.Option
	locker     Locker
	sweepBatch int
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithTracker replaces the default status tracker, typically to install
// custom retry policies.
func WithTracker(t *status.Tracker) Option {
	return func(s *Service) {
		if t != nil {
			s.tracker = t
		}
	}
}

// WithAuditLogger enables the append-only delivery log. Without it, no
// audit entries are written.
func WithAuditLogger(l audit.Logger) Option {
	return func(s *Service) { s.auditLog = l }
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRenderOptions sets options applied to every template render.
func WithRenderOptions(opts ...render.Option) Option {
	return func(s *Service) { s.renderOpts = opts }
}

// WithLocker installs a distributed lock for the retry sweep so concurrent
// instances do not double-process due notifications.
func WithLocker(l Locker) Option {
	return func(s *Service) { s.locker = l }
}

// WithSweepBatchSize bounds how many due records one RetryDue call
// processes.
func WithSweepBatchSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.sweepBatch = n
		}
	}
}

// WithClock overrides the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a dispatch service. records, templates, and senders are
// required; everything else has working defaults.
func New(records notification.Storage, templates *template.Registry, senders *channel.Registry, opts ...Option) *Service {
	if records == nil {
		panic("dispatch: records storage cannot be nil")
	}
	if templates == nil {
		panic("dispatch: template registry cannot be nil")
	}
	if senders == nil {
		panic("dispatch: sender registry cannot be nil")
	}

	s := &Service{
		records:    records,
		templates:  templates,
		senders:    senders,
		tracker:    status.NewTracker(),
		log:        slog.Default(),
		sweepBatch: 100,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// appendAudit writes one audit entry, logging instead of failing dispatch
// when the audit backend is down: losing a log line is preferable to
// blocking deliveries.
func (s *Service) appendAudit(ctx context.Context, notificationID string, event audit.EventType, opts ...audit.EntryOption) {
	if s.auditLog == nil {
		return
	}
	if err := s.auditLog.Append(ctx, notificationID, event, opts...); err != nil {
		s.log.ErrorContext(ctx, "audit append failed",
			slog.String("notification_id", notificationID),
			slog.String("event", string(event)),
			slog.Any("error", err),
		)
	}
}
