package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound     = errors.New("record not found")
	ErrClosed       = errors.New("store is closed")
	ErrEmptyPath    = errors.New("sqlite path cannot be empty")
	ErrUnknownStore = errors.New("unknown store kind")
)
