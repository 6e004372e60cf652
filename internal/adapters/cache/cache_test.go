package cache_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/okian/quantumtech/internal/adapters/cache"
	"github.com/okian/quantumtech/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func image(s string) types.Payload {
	return types.Payload{ContentType: "image/svg+xml", Body: []byte(s)}
}

func TestImageCache(t *testing.T) {
	ctx := context.Background()

	Convey("Given a new ImageCache", t, func() {
		Convey("When creating a cache with default options", func() {
			c := cache.New()

			Convey("Then it should be empty", func() {
				So(c.Len(), ShouldEqual, 0)
				_, ok := c.Get(ctx, "timeline")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When storing an image", func() {
			c := cache.New()
			key := cache.Key("timeline", "", "svg")
			c.Put(ctx, key, image("<svg/>"))

			Convey("Then it should be returned", func() {
				got, ok := c.Get(ctx, key)
				So(ok, ShouldBeTrue)
				So(string(got.Body), ShouldEqual, "<svg/>")
				hits, misses, _ := c.Stats()
				So(hits, ShouldEqual, 1)
				So(misses, ShouldEqual, 0)
			})

			Convey("And storing it again should replace the value", func() {
				c.Put(ctx, key, image("<svg></svg>"))
				got, _ := c.Get(ctx, key)
				So(string(got.Body), ShouldEqual, "<svg></svg>")
				So(c.Len(), ShouldEqual, 1)
			})
		})

		Convey("When the cache is full", func() {
			c := cache.New(cache.WithMaxEntries(2))
			c.Put(ctx, "a", image("a"))
			c.Put(ctx, "b", image("b"))
			c.Get(ctx, "a") // b becomes the oldest
			c.Put(ctx, "c", image("c"))

			Convey("Then the least recently used entry is evicted", func() {
				So(c.Len(), ShouldEqual, 2)
				_, okA := c.Get(ctx, "a")
				_, okB := c.Get(ctx, "b")
				_, okC := c.Get(ctx, "c")
				So(okA, ShouldBeTrue)
				So(okB, ShouldBeFalse)
				So(okC, ShouldBeTrue)
				_, _, evictions := c.Stats()
				So(evictions, ShouldEqual, 1)
			})
		})

		Convey("When the cache holds a single entry", func() {
			c := cache.New(cache.WithMaxEntries(1))
			c.Put(ctx, "a", image("a"))
			c.Put(ctx, "b", image("b"))

			Convey("Then each put replaces it", func() {
				So(c.Len(), ShouldEqual, 1)
				_, ok := c.Get(ctx, "b")
				So(ok, ShouldBeTrue)
			})
		})

		Convey("When the cache is unbounded", func() {
			c := cache.New(cache.WithMaxEntries(0))
			for i := 0; i < 200; i++ {
				c.Put(ctx, fmt.Sprintf("k%d", i), image("x"))
			}

			Convey("Then nothing is evicted", func() {
				So(c.Len(), ShouldEqual, 200)
			})
		})

		Convey("When the context is cancelled", func() {
			c := cache.New()
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			c.Put(cctx, "a", image("a"))

			Convey("Then nothing is stored or returned", func() {
				So(c.Len(), ShouldEqual, 0)
				c.Put(ctx, "a", image("a"))
				_, ok := c.Get(cctx, "a")
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestImageCacheConcurrency(t *testing.T) {
	Convey("Given a bounded cache shared by many goroutines", t, func() {
		ctx := context.Background()
		c := cache.New(cache.WithMaxEntries(16))
		var wg sync.WaitGroup

		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func(g int) {
				defer wg.Done()
				for i := 0; i < 100; i++ {
					key := fmt.Sprintf("k%d", (g*7+i)%32)
					if _, ok := c.Get(ctx, key); !ok {
						c.Put(ctx, key, image(key))
					}
				}
			}(g)
		}
		wg.Wait()

		Convey("Then the bound holds", func() {
			So(c.Len(), ShouldBeLessThanOrEqualTo, 16)
			hits, misses, _ := c.Stats()
			So(hits+misses, ShouldEqual, 800)
		})
	})
}
