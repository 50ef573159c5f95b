package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dispatchkit/dispatchkit/pkg/audit"
	"github.com/dispatchkit/dispatchkit/pkg/notification"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Store(ctx context.Context, entry audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockStorage) Query(ctx context.Context, criteria audit.Criteria) ([]audit.Entry, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]audit.Entry), args.Error(1)
}

func TestLogger_Append(t *testing.T) {
	t.Parallel()

	t.Run("stores entry with options applied", func(t *testing.T) {
		t.Parallel()

		storage := new(MockStorage)
		storage.On("Store", mock.Anything, mock.MatchedBy(func(e audit.Entry) bool {
			return e.NotificationID == "ntf-1" &&
				e.Event == audit.EventSent &&
				e.RecipientID == "user-1" &&
				e.Channel == notification.ChannelPush &&
				e.Status == notification.StatusSent &&
				e.ID != "" &&
				!e.CreatedAt.IsZero()
		})).Return(nil)

		log := audit.NewLogger(storage)
		err := log.Append(context.Background(), "ntf-1", audit.EventSent,
			audit.WithRecipient("user-1"),
			audit.WithChannel(notification.ChannelPush),
			audit.WithStatus(notification.StatusSent),
		)

		require.NoError(t, err)
		storage.AssertExpectations(t)
	})

	t.Run("fails validation without notification id", func(t *testing.T) {
		t.Parallel()

		storage := new(MockStorage)
		log := audit.NewLogger(storage)

		err := log.Append(context.Background(), "", audit.EventSent)
		assert.ErrorIs(t, err, audit.ErrEntryValidation)
		storage.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})

	t.Run("uses injected clock", func(t *testing.T) {
		t.Parallel()

		fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		storage := new(MockStorage)
		storage.On("Store", mock.Anything, mock.MatchedBy(func(e audit.Entry) bool {
			return e.CreatedAt.Equal(fixed)
		})).Return(nil)

		log := audit.NewLogger(storage, audit.WithLoggerClock(func() time.Time { return fixed }))
		err := log.Append(context.Background(), "ntf-1", audit.EventFailed,
			audit.WithDetails("push transport unreachable"),
		)

		require.NoError(t, err)
		storage.AssertExpectations(t)
	})

	t.Run("propagates storage errors", func(t *testing.T) {
		t.Parallel()

		storage := new(MockStorage)
		storage.On("Store", mock.Anything, mock.Anything).Return(audit.ErrStorageNotAvailable)

		log := audit.NewLogger(storage)
		err := log.Append(context.Background(), "ntf-1", audit.EventSent)
		assert.ErrorIs(t, err, audit.ErrStorageNotAvailable)
	})

	t.Run("panics on nil storage", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { audit.NewLogger(nil) })
	})
}

func TestEntryOptions(t *testing.T) {
	t.Parallel()

	t.Run("metadata accumulates across options", func(t *testing.T) {
		t.Parallel()

		storage := audit.NewMemoryStorage()
		log := audit.NewLogger(storage)

		err := log.Append(context.Background(), "ntf-1", audit.EventRetried,
			audit.WithMetadata("attempt", 2),
			audit.WithMetadata("delay", "10s"),
		)
		require.NoError(t, err)

		entries, err := storage.Query(context.Background(), audit.Criteria{NotificationID: "ntf-1"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 2, entries[0].Metadata["attempt"])
		assert.Equal(t, "10s", entries[0].Metadata["delay"])
	})
}
