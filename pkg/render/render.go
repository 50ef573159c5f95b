// Package render substitutes template variables into message content.
// Rendering is pure: it touches no storage and no transports, so the same
// template and variables always produce byte-identical output.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dispatchkit/dispatchkit/pkg/notification"
)

// MissingPolicy controls what happens when content references a variable
// absent from the input map.
type MissingPolicy int

const (
	// MissingEmpty replaces unknown placeholders with an empty string.
	// This matches lenient production behavior where a stale template
	// must not block delivery.
	MissingEmpty MissingPolicy = iota

	// MissingError fails the render on the first unknown placeholder.
	// Use this in tests and non-production builds to catch
	// template/payload drift early.
	MissingError
)

// Option configures rendering behavior.
type Option func(*config)

type config struct {
	policy MissingPolicy
}

// WithMissingPolicy sets the behavior for unresolved placeholders.
func WithMissingPolicy(p MissingPolicy) Option {
	return func(c *config) { c.policy = p }
}

// placeholderRe matches {{name}} with optional inner whitespace.
var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.]+)\s*\}\}`)

// Content renders every field of the given content with the variables.
func Content(c notification.Content, vars map[string]any, opts ...Option) (notification.Content, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var err error
	if c.Title, err = substitute(c.Title, vars, cfg.policy); err != nil {
		return notification.Content{}, err
	}
	if c.Body, err = substitute(c.Body, vars, cfg.policy); err != nil {
		return notification.Content{}, err
	}
	if c.DeepLink, err = substitute(c.DeepLink, vars, cfg.policy); err != nil {
		return notification.Content{}, err
	}
	return c, nil
}

// String renders a single string with the variables.
func String(s string, vars map[string]any, opts ...Option) (string, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return substitute(s, vars, cfg.policy)
}

func substitute(s string, vars map[string]any, policy MissingPolicy) (string, error) {
	if s == "" || !strings.Contains(s, "{{") {
		return s, nil
	}

	var missing string
	out := placeholderRe.ReplaceAllStringFunc(s, func(match string) string {
		name := placeholderRe.FindStringSubmatch(match)[1]
		v, ok := vars[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return ""
		}
		return stringify(v)
	})

	if missing != "" && policy == MissingError {
		return "", fmt.Errorf("%w: %s", ErrMissingVariable, missing)
	}
	return out, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
