package template

import "errors"

var (
	// ErrTemplateNotFound is returned when no active template exists for an event.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrDuplicateTemplate is returned when catalogs define the same event key twice.
	ErrDuplicateTemplate = errors.New("duplicate template event key")

	// ErrInvalidTemplate indicates a template definition is unusable.
	ErrInvalidTemplate = errors.New("invalid template")

	// ErrInvalidCatalog indicates a YAML catalog could not be parsed.
	ErrInvalidCatalog = errors.New("invalid template catalog")
)
