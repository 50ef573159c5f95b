package recipient_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dispatchkit/dispatchkit/pkg/recipient"
)

func TestMemoryDirectory_Contacts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	d := recipient.NewMemoryDirectory()
	d.SetContact("user-1", recipient.Contact{Email: "user@example.com", Phone: "+15551234567"})
	d.SetContact("email-only", recipient.Contact{Email: "other@example.com"})

	email, err := d.EmailAddress(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)

	phone, err := d.PhoneNumber(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "+15551234567", phone)

	_, err = d.EmailAddress(ctx, "unknown")
	assert.ErrorIs(t, err, recipient.ErrNotFound)

	// A contact without a phone is unreachable by SMS even though it exists.
	_, err = d.PhoneNumber(ctx, "email-only")
	assert.ErrorIs(t, err, recipient.ErrNotFound)
}

func TestMemoryDirectory_Tokens(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("active tokens filters inactive", func(t *testing.T) {
		t.Parallel()

		d := recipient.NewMemoryDirectory()
		require.NoError(t, d.Save(ctx, recipient.DeviceToken{
			RecipientID: "user-1",
			Class:       recipient.DeviceMobile,
			Token:       "tok-active",
			Active:      true,
		}))
		require.NoError(t, d.Save(ctx, recipient.DeviceToken{
			RecipientID: "user-1",
			Class:       recipient.DeviceWeb,
			Token:       "tok-inactive",
			Active:      false,
		}))

		tokens, err := d.ActiveTokens(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, "tok-active", tokens[0].Token)
	})

	t.Run("save upserts by token value", func(t *testing.T) {
		t.Parallel()

		d := recipient.NewMemoryDirectory()
		tok := recipient.DeviceToken{RecipientID: "user-1", Token: "tok-1", Class: recipient.DeviceMobile, Active: true}
		require.NoError(t, d.Save(ctx, tok))

		tok.Class = recipient.DeviceDesktop
		require.NoError(t, d.Save(ctx, tok))

		tokens, err := d.ActiveTokens(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, recipient.DeviceDesktop, tokens[0].Class)
	})

	t.Run("save requires recipient and token", func(t *testing.T) {
		t.Parallel()

		d := recipient.NewMemoryDirectory()
		assert.ErrorIs(t, d.Save(ctx, recipient.DeviceToken{RecipientID: "user-1"}), recipient.ErrInvalidToken)
		assert.ErrorIs(t, d.Save(ctx, recipient.DeviceToken{Token: "tok-1"}), recipient.ErrInvalidToken)
	})

	t.Run("deactivate keeps the token but hides it", func(t *testing.T) {
		t.Parallel()

		d := recipient.NewMemoryDirectory()
		require.NoError(t, d.Save(ctx, recipient.DeviceToken{RecipientID: "user-1", Token: "tok-1", Active: true}))
		require.NoError(t, d.Deactivate(ctx, "user-1", "tok-1"))

		tokens, err := d.ActiveTokens(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, tokens)

		assert.ErrorIs(t, d.Deactivate(ctx, "user-1", "missing"), recipient.ErrTokenNotFound)
	})

	t.Run("touch updates last used", func(t *testing.T) {
		t.Parallel()

		d := recipient.NewMemoryDirectory()
		require.NoError(t, d.Save(ctx, recipient.DeviceToken{RecipientID: "user-1", Token: "tok-1", Active: true}))

		at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, d.Touch(ctx, "user-1", "tok-1", at))

		tokens, err := d.ActiveTokens(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, at, tokens[0].LastUsedAt)

		assert.ErrorIs(t, d.Touch(ctx, "user-1", "missing", at), recipient.ErrTokenNotFound)
	})
}
