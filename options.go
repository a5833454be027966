package simplot

import "github.com/gogpu/gg"

// Option keys used in a line's numeric attribute map.
const (
	attrLineWidth  = "linewidth"
	attrAlpha      = "alpha"
	attrMarkerSize = "markersize"
)

// lineDefaults are underridden into every new line's attributes.
func lineDefaults() map[string]float64 {
	return map[string]float64{
		attrLineWidth:  2,
		attrAlpha:      0.6,
		attrMarkerSize: 6,
	}
}

// LineOption configures a line when it is first created.
// Options passed to a plot call that hits an existing line are ignored.
//
// Example:
//
//	p.Plot(simplot.Y(pop), simplot.WithColor("orange"), simplot.WithLabel("population"))
type LineOption func(*lineConfig)

type lineConfig struct {
	color string
	label string
	attrs map[string]float64
}

func newLineConfig(opts []LineOption) *lineConfig {
	cfg := &lineConfig{attrs: make(map[string]float64)}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithColor sets the line color, overriding any color in the format string.
// Lines with different colors are cached separately.
func WithColor(color string) LineOption {
	return func(c *lineConfig) {
		c.color = color
	}
}

// WithLineWidth sets the stroke width in pixels. Default 2.
func WithLineWidth(w float64) LineOption {
	return func(c *lineConfig) {
		c.attrs[attrLineWidth] = w
	}
}

// WithAlpha sets the line opacity in [0, 1]. Default 0.6.
func WithAlpha(a float64) LineOption {
	return func(c *lineConfig) {
		c.attrs[attrAlpha] = a
	}
}

// WithMarkerSize sets the marker diameter in pixels. Default 6.
func WithMarkerSize(s float64) LineOption {
	return func(c *lineConfig) {
		c.attrs[attrMarkerSize] = s
	}
}

// WithLabel sets the legend label of the line.
func WithLabel(label string) LineOption {
	return func(c *lineConfig) {
		c.label = label
	}
}

// Default figure geometry.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// FigureOption configures a Figure during creation.
type FigureOption func(*figureConfig)

type figureConfig struct {
	width      int
	height     int
	background gg.RGBA
	title      string
}

func defaultFigureConfig() figureConfig {
	return figureConfig{
		width:      DefaultWidth,
		height:     DefaultHeight,
		background: gg.White,
	}
}

// WithSize sets the figure size in pixels. Non-positive values keep the
// default.
func WithSize(width, height int) FigureOption {
	return func(c *figureConfig) {
		if width > 0 {
			c.width = width
		}
		if height > 0 {
			c.height = height
		}
	}
}

// WithBackground sets the figure background color. Default white.
func WithBackground(col gg.RGBA) FigureOption {
	return func(c *figureConfig) {
		c.background = col
	}
}

// WithFigureTitle sets the axes title at creation time.
func WithFigureTitle(title string) FigureOption {
	return func(c *figureConfig) {
		c.title = title
	}
}

// Default text size in points.
const DefaultFontSize = 12

// TextOption configures a text element such as an axis label.
type TextOption func(*Text)

// WithFontSize sets the text size in points.
func WithFontSize(size float64) TextOption {
	return func(t *Text) {
		if size > 0 {
			t.Size = size
		}
	}
}

// WithTextColor sets the text color.
func WithTextColor(col gg.RGBA) TextOption {
	return func(t *Text) {
		t.Color = col
	}
}

// Location is a legend position inside the axes.
type Location int

// Legend locations.
const (
	UpperRight Location = iota
	UpperLeft
	LowerLeft
	LowerRight
)

// LegendOption configures the legend.
type LegendOption func(*legend)

// WithLegendLocation places the legend. Default UpperRight.
func WithLegendLocation(loc Location) LegendOption {
	return func(l *legend) {
		l.loc = loc
	}
}

// PlotterOption configures a Plotter.
type PlotterOption func(*Plotter)

// WithDefaultFigure sets the options used for figures the Plotter creates
// on demand, when Plot is called before NewFig.
func WithDefaultFigure(opts ...FigureOption) PlotterOption {
	return func(p *Plotter) {
		p.figOpts = append(p.figOpts, opts...)
	}
}

// WithCache makes the Plotter share an existing PlotCache.
func WithCache(c *PlotCache) PlotterOption {
	return func(p *Plotter) {
		if c != nil {
			p.cache = c
		}
	}
}
