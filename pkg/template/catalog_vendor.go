package template

import "github.com/dispatchkit/dispatchkit/pkg/notification"

// VendorCatalog returns the templates for vendor-facing events.
func VendorCatalog() map[string]Template {
	return map[string]Template{
		"NEW_ORDER_RECEIVED": {
			Role: RoleVendor,
			Channels: map[notification.Channel]notification.Content{
				notification.ChannelPush: {
					Title:    "New Order",
					Body:     "Order #{{order_id}} received for {{order_total}}. Tap to accept.",
					DeepLink: "app://vendor/orders/{{order_id}}",
				},
				notification.ChannelInApp: {
					Title: "New Order",
					Body:  "Order #{{order_id}} ({{item_count}} items) is waiting for confirmation.",
				},
				notification.ChannelSocket: {
					Title: "New Order",
					Body:  "Order #{{order_id}} received.",
				},
			},
			Variables: []string{"order_id", "order_total", "item_count"},
			Priority:  notification.PriorityUrgent,
			Active:    true,
		},
		"ACCOUNT_APPROVED": {
			Role: RoleVendor,
			Channels: map[notification.Channel]notification.Content{
				notification.ChannelPush: {
					Title: "Account Approved",
					Body:  "Congratulations {{vendor_name}}, your store is now live!",
				},
				notification.ChannelEmail: {
					Title: "Your store {{store_name}} has been approved",
					Body:  "<p>Hi {{vendor_name}},</p><p>Your store <strong>{{store_name}}</strong> is approved and visible to customers.</p>",
				},
			},
			Variables: []string{"vendor_name", "store_name"},
			Priority:  notification.PriorityHigh,
			Active:    true,
		},
		"PAYOUT_PROCESSED": {
			Role: RoleVendor,
			Channels: map[notification.Channel]notification.Content{
				notification.ChannelPush: {
					Title: "Payout Sent",
					Body:  "Your payout of {{amount}} has been processed.",
				},
				notification.ChannelInApp: {
					Title: "Payout Sent",
					Body:  "Payout {{payout_id}} of {{amount}} was sent to your bank account.",
				},
			},
			Variables: []string{"payout_id", "amount"},
			Priority:  notification.PriorityNormal,
			Active:    true,
		},
	}
}
