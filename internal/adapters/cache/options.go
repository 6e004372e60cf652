package cache

// Option applies a configuration option to the ImageCache.
type Option func(*ImageCache)

// WithMaxEntries sets the maximum number of images to keep.
// If maxEntries > 0: bounded mode with LRU eviction.
// If maxEntries <= 0: unbounded mode.
func WithMaxEntries(maxEntries int) Option {
	return func(c *ImageCache) {
		c.maxEntries = maxEntries
	}
}
