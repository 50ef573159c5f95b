package template

import "github.com/dispatchkit/dispatchkit/pkg/notification"

// AdminCatalog returns the templates for admin-facing operational events.
func AdminCatalog() map[string]Template {
	return map[string]Template{
		"VENDOR_SIGNUP_PENDING": {
			Role: RoleAdmin,
			Channels: map[notification.Channel]notification.Content{
				notification.ChannelInApp: {
					Title: "Vendor Approval Needed",
					Body:  "{{vendor_name}} ({{store_name}}) is waiting for review.",
				},
				notification.ChannelEmail: {
					Title: "New vendor signup: {{store_name}}",
					Body:  "<p>{{vendor_name}} registered store <strong>{{store_name}}</strong> and is awaiting approval.</p>",
				},
			},
			Variables: []string{"vendor_name", "store_name"},
			Priority:  notification.PriorityNormal,
			Active:    true,
		},
		"SYSTEM_ALERT": {
			Role: RoleAdmin,
			Channels: map[notification.Channel]notification.Content{
				notification.ChannelPush: {
					Title: "System Alert",
					Body:  "{{alert_message}}",
				},
				notification.ChannelSMS: {
					Body: "ALERT: {{alert_message}}",
				},
				notification.ChannelEmail: {
					Title: "System alert: {{alert_code}}",
					Body:  "<p>{{alert_message}}</p><p>Code: {{alert_code}}</p>",
				},
			},
			Variables: []string{"alert_code", "alert_message"},
			Priority:  notification.PriorityUrgent,
			Active:    true,
		},
	}
}
