package template

import "github.com/dispatchkit/dispatchkit/pkg/notification"

// DriverCatalog returns the templates for driver-facing events.
func DriverCatalog() map[string]Template {
	return map[string]Template{
		"DELIVERY_ASSIGNED": {
			Role: RoleDriver,
			Channels: map[notification.Channel]notification.Content{
				notification.ChannelPush: {
					Title:    "New Delivery",
					Body:     "Pickup at {{pickup_address}}, drop-off at {{dropoff_address}}.",
					DeepLink: "app://driver/deliveries/{{delivery_id}}",
				},
				notification.ChannelSocket: {
					Title: "New Delivery",
					Body:  "Delivery {{delivery_id}} assigned.",
				},
			},
			Variables: []string{"delivery_id", "pickup_address", "dropoff_address"},
			Priority:  notification.PriorityUrgent,
			Active:    true,
		},
		"DELIVERY_CANCELLED": {
			Role: RoleDriver,
			Channels: map[notification.Channel]notification.Content{
				notification.ChannelPush: {
					Title: "Delivery Cancelled",
					Body:  "Delivery {{delivery_id}} was cancelled. No action needed.",
				},
				notification.ChannelSMS: {
					Body: "Delivery {{delivery_id}} cancelled.",
				},
			},
			Variables: []string{"delivery_id"},
			Priority:  notification.PriorityHigh,
			Active:    true,
		},
	}
}
