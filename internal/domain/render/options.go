package render

// Default marker scale divisors for the timeline scatter.
const (
	DefaultImportanceDivisor = 2.0
	DefaultImpactDivisor     = 20.0
)

// Option applies a configuration option to the Renderer.
type Option func(*Renderer)

// WithMarkerDivisors sets the divisors that turn discovery importance and
// technology impact into marker sizes. Non-positive values are ignored.
func WithMarkerDivisors(importance, impact float64) Option {
	return func(r *Renderer) {
		if importance > 0 {
			r.importanceDivisor = importance
		}
		if impact > 0 {
			r.impactDivisor = impact
		}
	}
}
