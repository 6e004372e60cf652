// Package view defines the closed set of dashboard view modes and the
// selector that tracks which one is current.
package view

import (
	"fmt"
	"strings"
)

// Mode is one of the five dashboard views. The zero value is Timeline.
type Mode int

// The five modes, in menu order.
const (
	Timeline Mode = iota
	EconomicImpact
	EverydayApplications
	DevelopmentLag
	TechnologyDetails
)

// Modes lists every mode in menu order.
var Modes = []Mode{Timeline, EconomicImpact, EverydayApplications, DevelopmentLag, TechnologyDetails}

// Secondary names the kind of second selection a mode takes.
type Secondary string

// Secondary selection kinds.
const (
	SecondaryNone       Secondary = ""
	SecondarySector     Secondary = "sector"
	SecondaryTechnology Secondary = "technology"
)

// Slug returns the URL-safe identifier of m.
func (m Mode) Slug() string {
	switch m {
	case Timeline:
		return "timeline"
	case EconomicImpact:
		return "economic-impact"
	case EverydayApplications:
		return "everyday-applications"
	case DevelopmentLag:
		return "development-lag"
	case TechnologyDetails:
		return "technology-details"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Label returns the menu label of m.
func (m Mode) Label() string {
	switch m {
	case Timeline:
		return "Timeline Storica"
	case EconomicImpact:
		return "Impatto Economico"
	case EverydayApplications:
		return "Applicazioni Quotidiane"
	case DevelopmentLag:
		return "Tempo di Sviluppo"
	case TechnologyDetails:
		return "Dettagli Tecnologie"
	}
	return m.Slug()
}

// Secondary reports which second selection m takes, if any.
func (m Mode) Secondary() Secondary {
	switch m {
	case EconomicImpact:
		return SecondarySector
	case TechnologyDetails:
		return SecondaryTechnology
	case Timeline, EverydayApplications, DevelopmentLag:
		return SecondaryNone
	}
	return SecondaryNone
}

// Valid reports whether m is one of the five modes.
func (m Mode) Valid() bool {
	return m >= Timeline && m <= TechnologyDetails
}

// String implements fmt.Stringer.
func (m Mode) String() string { return m.Slug() }

// MarshalText encodes m as its slug.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidViewMode, int(m))
	}
	return []byte(m.Slug()), nil
}

// UnmarshalText decodes a slug or label.
func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMode accepts a slug ("economic-impact") or a menu label
// ("Impatto Economico"), case-insensitively. Anything else is
// ErrInvalidViewMode; there is no fallback mode.
func ParseMode(s string) (Mode, error) {
	needle := strings.TrimSpace(s)
	for _, m := range Modes {
		if strings.EqualFold(needle, m.Slug()) || strings.EqualFold(needle, m.Label()) {
			return m, nil
		}
	}
	return Timeline, fmt.Errorf("%w: %q", ErrInvalidViewMode, s)
}

// Selector holds the current mode. The latest valid choice wins.
type Selector struct {
	current Mode
}

// NewSelector returns a selector positioned on the first mode, Timeline.
func NewSelector() *Selector {
	return &Selector{current: Timeline}
}

// Current returns the selected mode.
func (s *Selector) Current() Mode { return s.current }

// Select makes m current. Invalid modes leave the selection unchanged.
func (s *Selector) Select(m Mode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidViewMode, int(m))
	}
	s.current = m
	return nil
}

// SelectString parses s and makes it current.
func (s *Selector) SelectString(raw string) error {
	m, err := ParseMode(raw)
	if err != nil {
		return err
	}
	s.current = m
	return nil
}
