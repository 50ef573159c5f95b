package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dispatchkit/dispatchkit/pkg/notification"
	"github.com/dispatchkit/dispatchkit/pkg/template"
)

func testTemplate(active bool) template.Template {
	return template.Template{
		Role:   template.RoleCustomer,
		Active: active,
		Channels: map[notification.Channel]notification.Content{
			notification.ChannelPush: {Title: "Hi", Body: "Hello {{name}}"},
		},
	}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	t.Run("merges catalogs and defaults IDs", func(t *testing.T) {
		t.Parallel()

		r, err := template.NewRegistry(
			map[string]template.Template{"EVENT_A": testTemplate(true)},
			map[string]template.Template{"EVENT_B": testTemplate(true)},
		)
		require.NoError(t, err)
		assert.Equal(t, 2, r.Len())

		tmpl, err := r.Get("EVENT_A")
		require.NoError(t, err)
		assert.Equal(t, "EVENT_A", tmpl.ID)
	})

	t.Run("duplicate event keys fail construction", func(t *testing.T) {
		t.Parallel()

		_, err := template.NewRegistry(
			map[string]template.Template{"EVENT_A": testTemplate(true)},
			map[string]template.Template{"EVENT_A": testTemplate(true)},
		)
		assert.ErrorIs(t, err, template.ErrDuplicateTemplate)
	})

	t.Run("template without channel content fails", func(t *testing.T) {
		t.Parallel()

		_, err := template.NewRegistry(map[string]template.Template{
			"EVENT_A": {Role: template.RoleCustomer, Active: true},
		})
		assert.ErrorIs(t, err, template.ErrInvalidTemplate)
	})
}

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	r, err := template.NewRegistry(map[string]template.Template{
		"ACTIVE":   testTemplate(true),
		"INACTIVE": testTemplate(false),
	})
	require.NoError(t, err)

	_, err = r.Get("ACTIVE")
	assert.NoError(t, err)

	// Inactive templates are indistinguishable from unknown events.
	_, err = r.Get("INACTIVE")
	assert.ErrorIs(t, err, template.ErrTemplateNotFound)

	_, err = r.Get("UNKNOWN")
	assert.ErrorIs(t, err, template.ErrTemplateNotFound)
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := template.DefaultRegistry()
	require.Positive(t, r.Len())

	tmpl, err := r.Get("ORDER_PLACED")
	require.NoError(t, err)
	assert.Equal(t, template.RoleCustomer, tmpl.Role)
	assert.True(t, tmpl.Active)
}

func TestTemplate_PrimaryContent(t *testing.T) {
	t.Parallel()

	push := notification.Content{Title: "push"}
	inApp := notification.Content{Title: "in-app"}
	email := notification.Content{Title: "email"}

	tests := []struct {
		name     string
		channels map[notification.Channel]notification.Content
		want     notification.Content
	}{
		{
			name: "push wins",
			channels: map[notification.Channel]notification.Content{
				notification.ChannelPush:  push,
				notification.ChannelInApp: inApp,
				notification.ChannelEmail: email,
			},
			want: push,
		},
		{
			name: "in-app when no push",
			channels: map[notification.Channel]notification.Content{
				notification.ChannelInApp: inApp,
				notification.ChannelEmail: email,
			},
			want: inApp,
		},
		{
			name: "fixed fallback order when neither push nor in-app exists",
			channels: map[notification.Channel]notification.Content{
				notification.ChannelSMS:   {Title: "sms"},
				notification.ChannelEmail: email,
			},
			want: email,
		},
		{
			name: "empty template yields empty content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpl := template.Template{Channels: tt.channels}
			assert.Equal(t, tt.want, tmpl.PrimaryContent())
		})
	}
}
