package dataset

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrDataIntegrity = errors.New("data integrity violation")
)
