package template

import (
	"github.com/dispatchkit/dispatchkit/pkg/notification"
)

// Role groups templates by the audience they address. Catalogs are
// enumerated per role and merged into one registry at process start.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleDriver   Role = "driver"
	RoleAdmin    Role = "admin"
)

// Template is the per-event, per-channel message definition. Content uses
// {{name}} placeholders resolved by the render package. Templates are
// read-only at runtime; content changes are a deployment concern.
type Template struct {
	ID        string                                        `yaml:"id"`
	Role      Role                                          `yaml:"role"`
	Channels  map[notification.Channel]notification.Content `yaml:"channels"`
	Variables []string                                      `yaml:"variables"`
	Priority  notification.Priority                         `yaml:"priority"`
	Active    bool                                          `yaml:"active"`
}

// Content returns the template's content for a channel and whether the
// channel has dedicated content defined.
func (t Template) Content(ch notification.Channel) (notification.Content, bool) {
	c, ok := t.Channels[ch]
	return c, ok
}

// PrimaryContent returns the content used for the record's stored
// title/message: the push representation, falling back through the remaining
// channels in a fixed order so the choice is deterministic.
func (t Template) PrimaryContent() notification.Content {
	for _, ch := range []notification.Channel{
		notification.ChannelPush,
		notification.ChannelInApp,
		notification.ChannelSocket,
		notification.ChannelEmail,
		notification.ChannelSMS,
	} {
		if c, ok := t.Channels[ch]; ok {
			return c
		}
	}
	return notification.Content{}
}
