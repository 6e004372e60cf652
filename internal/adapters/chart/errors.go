package chart

import "errors"

// Sentinel kinds for rasterization errors.
var (
	ErrNilChart          = errors.New("chart cannot be nil")
	ErrEmptyChart        = errors.New("chart has no points")
	ErrUnsupportedKind   = errors.New("unsupported chart kind")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)
