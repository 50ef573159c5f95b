package render

import "errors"

var (
	// ErrMissingVariable is returned under MissingError policy when content
	// references a variable absent from the input map.
	ErrMissingVariable = errors.New("missing template variable")
)
