package template

import "github.com/dispatchkit/dispatchkit/pkg/notification"

// CustomerCatalog returns the templates for customer-facing events.
func CustomerCatalog() map[string]Template {
	return map[string]Template{
		"ORDER_PLACED": {
			Role: RoleCustomer,
			Channels: map[notification.Channel]notification.Content{
				notification.ChannelPush: {
					Title:    "Order Confirmed",
					Body:     "Your order #{{order_id}} has been placed. Total: {{order_total}}.",
					DeepLink: "app://orders/{{order_id}}",
				},
				notification.ChannelInApp: {
					Title: "Order Confirmed",
					Body:  "Thanks {{customer_name}}, order #{{order_id}} is confirmed.",
				},
				notification.ChannelEmail: {
					Title: "Your order {{order_id}} is confirmed",
					Body:  "<p>Hi {{customer_name}},</p><p>Your order <strong>#{{order_id}}</strong> for {{order_total}} has been placed successfully.</p>",
				},
			},
			Variables: []string{"order_id", "customer_name", "order_total"},
			Priority:  notification.PriorityHigh,
			Active:    true,
		},
		"ORDER_SHIPPED": {
			Role: RoleCustomer,
			Channels: map[notification.Channel]notification.Content{
				notification.ChannelPush: {
					Title:    "Order Shipped",
					Body:     "Order #{{order_id}} is on its way with {{carrier}}.",
					DeepLink: "app://orders/{{order_id}}/tracking",
				},
				notification.ChannelInApp: {
					Title: "Order Shipped",
					Body:  "Order #{{order_id}} shipped via {{carrier}}. Tracking: {{tracking_number}}.",
				},
			},
			Variables: []string{"order_id", "carrier", "tracking_number"},
			Priority:  notification.PriorityNormal,
			Active:    true,
		},
		"ORDER_DELIVERED": {
			Role: RoleCustomer,
			Channels: map[notification.Channel]notification.Content{
				notification.ChannelPush: {
					Title:    "Order Delivered",
					Body:     "Order #{{order_id}} has been delivered. Enjoy!",
					DeepLink: "app://orders/{{order_id}}",
				},
				notification.ChannelInApp: {
					Title: "Order Delivered",
					Body:  "Order #{{order_id}} was delivered by {{driver_name}}.",
				},
			},
			Variables: []string{"order_id", "driver_name"},
			Priority:  notification.PriorityNormal,
			Active:    true,
		},
		"PAYMENT_FAILED": {
			Role: RoleCustomer,
			Channels: map[notification.Channel]notification.Content{
				notification.ChannelPush: {
					Title:    "Payment Failed",
					Body:     "We couldn't process payment for order #{{order_id}}. Please update your payment method.",
					DeepLink: "app://orders/{{order_id}}/payment",
				},
				notification.ChannelSMS: {
					Body: "Payment for order {{order_id}} failed. Update your payment method to avoid cancellation.",
				},
				notification.ChannelEmail: {
					Title: "Action required: payment failed for order {{order_id}}",
					Body:  "<p>Payment of {{order_total}} for order <strong>#{{order_id}}</strong> could not be processed.</p>",
				},
			},
			Variables: []string{"order_id", "order_total"},
			Priority:  notification.PriorityUrgent,
			Active:    true,
		},
	}
}
