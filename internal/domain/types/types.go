// Package types contains the read shapes shared by the service and the HTTP API.
package types

import "github.com/okian/quantumtech/internal/domain/dataset"

// ViewSummary describes one dashboard mode and its secondary selection domain.
type ViewSummary struct {
	Mode      string   `json:"mode"`
	Label     string   `json:"label"`
	Secondary string   `json:"secondary,omitempty"`
	Options   []string `json:"options,omitempty"`
}

// Payload is an encoded response body together with its media type.
type Payload struct {
	ContentType string
	Body        []byte
}

// Len returns the body size in bytes.
func (p Payload) Len() int { return len(p.Body) }

// IntegrityReport lists the soft references that did not resolve.
type IntegrityReport struct {
	Count      int                           `json:"count"`
	Unresolved []dataset.UnresolvedReference `json:"unresolved"`
}

// NewIntegrityReport wraps refs, never returning a nil slice.
func NewIntegrityReport(refs []dataset.UnresolvedReference) IntegrityReport {
	if refs == nil {
		refs = []dataset.UnresolvedReference{}
	}
	return IntegrityReport{Count: len(refs), Unresolved: refs}
}
