// Package config loads typed configuration structs from environment
// variables.
//
// Configuration is declared as struct fields with `env` tags and loaded with
// Load or MustLoad. Parsed configurations are cached per type, so the same
// struct type always resolves to the same values no matter where in the
// process it is loaded. A local .env file is honored in development.
package config
