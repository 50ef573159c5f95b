package redis

import "time"

// Config holds the redis connection settings, loaded from the environment.
// ConnectionURL follows the usual "redis://:password@host:6379/0" form.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`

	// LockTTL bounds how long the retry-sweep lock is held before it
	// expires on its own.
	LockTTL time.Duration `env:"REDIS_LOCK_TTL" envDefault:"30s"`
}
