package render

import "github.com/okian/quantumtech/internal/domain/view"

// ChartKind is the type of chart a view draws.
type ChartKind string

// Chart kinds.
const (
	ChartScatter ChartKind = "scatter"
	ChartBar     ChartKind = "bar"
)

// Color scales for bar charts whose fill follows the value.
const (
	ScaleViridis = "viridis"
	ScaleBlueRed = "bluered"
)

// View is the render-ready output of one dashboard mode.
type View struct {
	Mode        view.Mode      `json:"mode"`
	Label       string         `json:"label"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Chart       *Chart         `json:"chart,omitempty"`
	Table       *Table         `json:"table,omitempty"`
	Sections    []Section      `json:"sections,omitempty"`
	Callouts    []Callout      `json:"callouts,omitempty"`
	Secondary   view.Secondary `json:"secondary,omitempty"`
	Options     []string       `json:"options,omitempty"`
	Selected    string         `json:"selected,omitempty"`
}

// Chart describes a chart independently of any drawing library.
type Chart struct {
	Kind       ChartKind `json:"kind"`
	Title      string    `json:"title,omitempty"`
	XAxis      string    `json:"x_axis"`
	YAxis      string    `json:"y_axis,omitempty"`
	YTicks     []Tick    `json:"y_ticks,omitempty"`
	YRange     *Range    `json:"y_range,omitempty"`
	ColorScale string    `json:"color_scale,omitempty"`
	Series     []Series  `json:"series"`
}

// Points returns the total number of points across all series.
func (c *Chart) Points() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, s := range c.Series {
		n += len(s.Points)
	}
	return n
}

// Tick is a labelled axis position.
type Tick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Range bounds an axis.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Series is a named group of points drawn in one style.
type Series struct {
	Name   string  `json:"name"`
	Color  string  `json:"color,omitempty"`
	Points []Point `json:"points"`
}

// Point is one marker or bar. Size is the marker diameter for scatter
// charts and unused for bars.
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
	Size  float64 `json:"size,omitempty"`
	Hover string  `json:"hover"`
}

// Table is a simple text grid.
type Table struct {
	Title   string     `json:"title,omitempty"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Field is a labelled value inside a section.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section is a block of detail text under the chart.
type Section struct {
	Heading string   `json:"heading"`
	Body    string   `json:"body,omitempty"`
	Fields  []Field  `json:"fields,omitempty"`
	Items   []string `json:"items,omitempty"`
}

// Callout is a highlighted note.
type Callout struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Empty reports whether v carries nothing to show.
func (v View) Empty() bool {
	return v.Chart.Points() == 0 && v.Table == nil && len(v.Sections) == 0 && len(v.Callouts) == 0
}
