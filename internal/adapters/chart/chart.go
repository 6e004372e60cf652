// Package chart rasterizes render charts into PNG or SVG images.
package chart

import (
	"fmt"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/okian/quantumtech/internal/domain/render"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 1024
	DefaultHeight = 500

	minDotRadius = 2.0
	xPadding     = 5.0
)

// Format is an image encoding.
type Format string

// Supported formats.
const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat maps "png" or "svg" to a Format. Empty means PNG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatPNG):
		return FormatPNG, nil
	case string(FormatSVG):
		return FormatSVG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) provider() gochart.RendererProvider {
	if f == FormatSVG {
		return gochart.SVG
	}
	return gochart.PNG
}

// Rasterizer draws render.Chart values with go-chart.
type Rasterizer struct {
	width  int
	height int
}

// New creates a rasterizer with the given options.
func New(opts ...Option) *Rasterizer {
	r := &Rasterizer{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Size returns the canvas size.
func (r *Rasterizer) Size() (width, height int) { return r.width, r.height }

// Render encodes c as f into w.
func (r *Rasterizer) Render(w io.Writer, c *render.Chart, f Format) error {
	if c == nil {
		return ErrNilChart
	}
	if c.Points() == 0 {
		return ErrEmptyChart
	}

	var err error
	switch c.Kind {
	case render.ChartScatter:
		err = r.scatter(c).Render(f.provider(), w)
	case render.ChartBar:
		err = r.bar(c).Render(f.provider(), w)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedKind, c.Kind)
	}
	if err != nil {
		return fmt.Errorf("render %s chart: %w", c.Kind, err)
	}
	return nil
}

func (r *Rasterizer) scatter(c *render.Chart) *gochart.Chart {
	series := make([]gochart.Series, 0, len(c.Series))
	minX, maxX := 0.0, 0.0
	first := true
	for _, s := range c.Series {
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		radii := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i], ys[i] = p.X, p.Y
			radii[i] = max(p.Size/2, minDotRadius)
			if first || p.X < minX {
				minX = p.X
			}
			if first || p.X > maxX {
				maxX = p.X
			}
			first = false
		}
		color := parseColor(s.Color)
		series = append(series, gochart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeWidth: gochart.Disabled,
				DotColor:    color.WithAlpha(180),
				DotWidthProvider: func(_, _ gochart.Range, index int, _, _ float64) float64 {
					return radii[index]
				},
			},
		})
	}

	yAxis := gochart.YAxis{Name: c.YAxis, Ticks: ticks(c.YTicks)}
	if c.YRange != nil {
		yAxis.Range = &gochart.ContinuousRange{Min: c.YRange.Min, Max: c.YRange.Max}
	}

	ch := &gochart.Chart{
		Title:      c.Title,
		Width:      r.width,
		Height:     r.height,
		Background: gochart.Style{Padding: gochart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis: gochart.XAxis{
			Name:           c.XAxis,
			Range:          &gochart.ContinuousRange{Min: minX - xPadding, Max: maxX + xPadding},
			ValueFormatter: yearFormatter,
		},
		YAxis:  yAxis,
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(ch)}
	return ch
}

func (r *Rasterizer) bar(c *render.Chart) *gochart.BarChart {
	var points []render.Point
	for _, s := range c.Series {
		points = append(points, s.Points...)
	}

	lo, hi := points[0].Y, points[0].Y
	for _, p := range points {
		lo, hi = min(lo, p.Y), max(hi, p.Y)
	}

	bars := make([]gochart.Value, len(points))
	for i, p := range points {
		fill := scaleColor(c.ColorScale, p.Y, lo, hi)
		bars[i] = gochart.Value{
			Label: p.Label,
			Value: p.Y,
			Style: gochart.Style{FillColor: fill, StrokeColor: fill},
		}
	}

	return &gochart.BarChart{
		Title:      c.Title,
		Width:      r.width,
		Height:     r.height,
		BarWidth:   max(r.width/(2*len(bars)+1), 1),
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Bottom: 20}},
		XAxis:      gochart.Style{FontSize: 8},
		YAxis:      gochart.YAxis{Name: c.YAxis, Style: gochart.Style{FontSize: 8}},
		Bars:       bars,
	}
}

func ticks(in []render.Tick) []gochart.Tick {
	if len(in) == 0 {
		return nil
	}
	out := make([]gochart.Tick, len(in))
	for i, t := range in {
		out[i] = gochart.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}

func yearFormatter(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}

func parseColor(hex string) drawing.Color {
	if hex == "" {
		return gochart.ColorBlue
	}
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// scaleColor maps v in [lo,hi] onto a color scale.
func scaleColor(scale string, v, lo, hi float64) drawing.Color {
	switch scale {
	case render.ScaleBlueRed:
		t := 0.5
		if hi > lo {
			t = (v - lo) / (hi - lo)
		}
		return drawing.Color{
			R: uint8(255 * t),
			G: 0,
			B: uint8(255 * (1 - t)),
			A: 255,
		}
	case render.ScaleViridis:
		if hi == lo {
			return gochart.Viridis(1, 0, 1)
		}
		return gochart.Viridis(v, lo, hi)
	}
	return gochart.ColorBlue
}
