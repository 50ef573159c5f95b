package status

import (
	"math"
	"time"

	"github.com/dispatchkit/dispatchkit/pkg/notification"
)

// RetryPolicy governs retry scheduling for one channel. Policies are fixed
// configuration; only the resolved retry count and next-attempt time are
// persisted on the record.
type RetryPolicy struct {
	MaxRetries        int
	BackoffMultiplier float64
	InitialDelay      time.Duration
}

// Delay returns the backoff delay before the given retry. retryCount is the
// number of retries already scheduled, so the first retry (retryCount 0)
// waits exactly InitialDelay.
func (p RetryPolicy) Delay(retryCount int) time.Duration {
	if p.InitialDelay <= 0 {
		return 0
	}
	mult := p.BackoffMultiplier
	if mult <= 0 {
		mult = 1
	}
	return time.Duration(float64(p.InitialDelay) * math.Pow(mult, float64(retryCount)))
}

// DefaultPolicies returns the per-channel retry policy table. In-app and
// socket never retry: in-app content is already durable via the record
// itself, and sockets are ephemeral by nature.
func DefaultPolicies() map[notification.Channel]RetryPolicy {
	return map[notification.Channel]RetryPolicy{
		notification.ChannelPush:   {MaxRetries: 2, BackoffMultiplier: 2, InitialDelay: 5 * time.Second},
		notification.ChannelEmail:  {MaxRetries: 3, BackoffMultiplier: 2, InitialDelay: 10 * time.Second},
		notification.ChannelSMS:    {MaxRetries: 1, BackoffMultiplier: 2, InitialDelay: 5 * time.Second},
		notification.ChannelInApp:  {},
		notification.ChannelSocket: {},
	}
}
