package view

import "errors"

// Sentinel kinds for view selection errors.
var (
	ErrInvalidViewMode = errors.New("invalid view mode")
)
