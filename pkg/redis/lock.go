package redis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock key only when it still holds our token, so
// a lock that expired and was re-acquired elsewhere is never released by the
// old holder.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`)

// Locker provides best-effort distributed locks on top of Redis SET NX.
// Intended to keep concurrent retry sweepers from processing the same batch;
// it is not a fencing mechanism for correctness-critical sections.
type Locker struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewLocker creates a locker. ttl bounds how long a crashed holder can block
// other sweepers.
func NewLocker(client redis.UniversalClient, ttl time.Duration) *Locker {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Locker{client: client, ttl: ttl}
}

// Acquire takes the lock for key. Returns ok=false when another holder owns
// it. On success, the returned release function frees the lock; releasing a
// lock that has already expired is a no-op.
func (l *Locker) Acquire(ctx context.Context, key string) (release func(context.Context) error, ok bool, err error) {
	token := uuid.New().String()

	acquired, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, errors.Join(ErrLockFailed, err)
	}
	if !acquired {
		return nil, false, nil
	}

	release = func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
			return errors.Join(ErrLockFailed, err)
		}
		return nil
	}
	return release, true, nil
}
