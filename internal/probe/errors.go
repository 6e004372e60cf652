package probe

import "errors"

// Sentinel errors returned by the probe.
var (
	ErrUnhealthy   = errors.New("service unhealthy")
	ErrUnexpected  = errors.New("unexpected response")
	ErrChecksFailed = errors.New("probe checks failed")
)
