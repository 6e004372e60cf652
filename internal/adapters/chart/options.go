package chart

// Option applies a configuration option to the Rasterizer.
type Option func(*Rasterizer)

// WithSize sets the canvas size. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(r *Rasterizer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}
