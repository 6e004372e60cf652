package render

import "errors"

// Sentinel kinds for render errors.
var (
	ErrSelectionNotFound = errors.New("selection not found")
	ErrNilCatalog        = errors.New("catalog cannot be nil")
)
