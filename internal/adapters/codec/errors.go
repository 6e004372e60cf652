package codec

import "errors"

// Sentinel kinds for codec errors.
var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrUnknownTable  = errors.New("unknown table")
	ErrSingleTable   = errors.New("format needs exactly one table")
)
