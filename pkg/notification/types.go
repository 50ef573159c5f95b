package notification

// Channel identifies a delivery transport.
type Channel string

const (
	ChannelPush   Channel = "push"
	ChannelInApp  Channel = "in_app"
	ChannelSocket Channel = "socket"
	ChannelEmail  Channel = "email"
	ChannelSMS    Channel = "sms"
)

// Valid reports whether the channel is one of the known transports.
func (c Channel) Valid() bool {
	switch c {
	case ChannelPush, ChannelInApp, ChannelSocket, ChannelEmail, ChannelSMS:
		return true
	}
	return false
}

// Type classifies a notification and drives the default channel ordering.
type Type string

const (
	TypeSystem        Type = "system"
	TypeTransactional Type = "transactional"
	TypeOperational   Type = "operational"
	TypeMarketing     Type = "marketing"
	TypeCritical      Type = "critical"
)

// Valid reports whether the type is one of the known classifications.
func (t Type) Valid() bool {
	switch t {
	case TypeSystem, TypeTransactional, TypeOperational, TypeMarketing, TypeCritical:
		return true
	}
	return false
}

// DefaultChannels returns the ordered channel list used when the payload
// does not override channel selection. Order is delivery priority.
func (t Type) DefaultChannels() []Channel {
	switch t {
	case TypeSystem:
		return []Channel{ChannelPush, ChannelInApp, ChannelSocket}
	case TypeTransactional:
		return []Channel{ChannelPush, ChannelInApp, ChannelEmail}
	case TypeOperational:
		return []Channel{ChannelPush, ChannelSocket, ChannelInApp}
	case TypeMarketing:
		return []Channel{ChannelInApp, ChannelEmail}
	case TypeCritical:
		return []Channel{ChannelPush, ChannelSMS, ChannelEmail}
	default:
		return []Channel{ChannelInApp}
	}
}

// Status is the delivery state of a notification record.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
)

// Priority represents the notification priority level.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
	PriorityUrgent
)

// Content is rendered, channel-ready message content.
type Content struct {
	Title    string `json:"title" yaml:"title"`
	Body     string `json:"body" yaml:"body"`
	DeepLink string `json:"deep_link,omitempty" yaml:"deep_link,omitempty"`
}
