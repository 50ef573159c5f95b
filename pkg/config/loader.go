package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu     sync.Mutex
	cacheValues = make(map[string]any)

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into the provided configuration struct
// based on `env` field tags. Each unique configuration type is parsed once
// per process; subsequent calls return the cached copy so every component
// sees the same configuration.
//
// A .env file in the working directory is loaded on first use when present.
//
// Example:
//
//	type MongoConfig struct {
//		URI      string `env:"MONGODB_URI,required"`
//		Database string `env:"MONGODB_DATABASE" envDefault:"dispatch"`
//	}
//
//	var cfg MongoConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional; a missing file is not an error.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := typeName[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cacheValues[typeName]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	// Store a copy so later mutations by the caller do not leak into the
	// cache.
	cacheValues[typeName] = *v
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use for configuration the service cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ResetCache clears all cached configurations. Intended for tests that vary
// environment variables between cases.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	clear(cacheValues)
}

// typeName returns a string identifier for the generic type T.
func typeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
