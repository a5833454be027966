package simplot

import (
	"fmt"

	"github.com/gogpu/simplot/internal/seq"
)

// Series is the data of one Plot call. It is one of YOnly, YWithStyle,
// XY or XYWithStyle.
type Series interface {
	parts() (x, y []float64, style string, hasX bool)
}

// YOnly plots y against its index, in the default style.
type YOnly struct {
	Y []float64
}

// YWithStyle plots y against its index in the given format.
type YWithStyle struct {
	Y     []float64
	Style string
}

// XY plots y against x, in the default style.
type XY struct {
	X, Y []float64
}

// XYWithStyle plots y against x in the given format.
type XYWithStyle struct {
	X, Y  []float64
	Style string
}

func (s YOnly) parts() ([]float64, []float64, string, bool) {
	return nil, s.Y, DefaultStyle, false
}

func (s YWithStyle) parts() ([]float64, []float64, string, bool) {
	return nil, s.Y, s.Style, false
}

func (s XY) parts() ([]float64, []float64, string, bool) {
	return s.X, s.Y, DefaultStyle, true
}

func (s XYWithStyle) parts() ([]float64, []float64, string, bool) {
	return s.X, s.Y, s.Style, true
}

// Y returns a YOnly series of the given values.
func Y(ys ...float64) YOnly { return YOnly{Y: ys} }

// Point returns an XY series holding the single point (x, y).
func Point(x, y float64) XY { return XY{X: []float64{x}, Y: []float64{y}} }

// Styled returns s drawn with format string style.
func Styled(s Series, style string) Series {
	x, y, _, hasX := s.parts()
	if hasX {
		return XYWithStyle{X: x, Y: y, Style: style}
	}
	return YWithStyle{Y: y, Style: style}
}

// Plotter is the entry point for incremental plotting. It owns a PlotCache
// and tracks the current figure, the one Plot and the label setters act on.
//
// A Plotter is not safe for concurrent use.
//
// Example:
//
//	p := simplot.NewPlotter()
//	for t := range 100 {
//	    pop = step(pop)
//	    p.Plot(simplot.Point(float64(t), pop), simplot.WithLabel("population"))
//	}
//	p.LabelAxes("population", "time", "Logistic growth")
//	p.SaveFig("growth.png")
type Plotter struct {
	cache   *PlotCache
	current *Figure
	figOpts []FigureOption
}

// NewPlotter creates a Plotter with its own cache and no figure. A figure
// is created on the first call that needs one.
func NewPlotter(opts ...PlotterOption) *Plotter {
	p := &Plotter{}
	for _, opt := range opts {
		opt(p)
	}
	if p.cache == nil {
		p.cache = NewPlotCache()
	}
	return p
}

// Cache returns the Plotter's PlotCache.
func (p *Plotter) Cache() *PlotCache { return p.cache }

// Figure returns the current figure, creating one if there is none.
func (p *Plotter) Figure() *Figure {
	if p.current == nil {
		p.current = NewFigure(p.figOpts...)
	}
	return p.current
}

// SetFigure makes fig the current figure.
func (p *Plotter) SetFigure(fig *Figure) {
	p.current = fig
}

// State returns the SurfaceState of fig, or of the current figure when
// fig is nil.
func (p *Plotter) State(fig *Figure) *SurfaceState {
	if fig == nil {
		fig = p.Figure()
	}
	return p.cache.State(fig)
}

// Plot appends s to the line matching its format and color on the current
// figure, then rescales the axes and redraws.
//
// When s carries no x values the line's x data is regenerated as
// 0..N-1 for its new length. Otherwise the x values are appended.
// X and y of one call must have the same length.
func (p *Plotter) Plot(s Series, opts ...LineOption) (*Line, error) {
	x, y, style, hasX := s.parts()
	if hasX && len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(x), len(y))
	}

	fig := p.Figure()
	state := p.cache.State(fig)
	key := LineKey{Style: style, Color: newLineConfig(opts).color}
	line, err := state.Line(key, opts...)
	if err != nil {
		return nil, err
	}

	ys := seq.Append(line.ys, y...)
	var xs []float64
	if hasX {
		xs = seq.Append(line.xs, x...)
	} else {
		xs = seq.Arange(len(ys))
	}
	line.SetData(xs, ys)

	a := fig.axes
	a.Relim()
	a.SetMargins(DefaultMargin, DefaultMargin)
	a.AutoscaleView()
	if err := fig.Draw(); err != nil {
		return nil, err
	}
	st := state.Stats()
	Logger().Debug("line updated", "style", key.Style, "points", len(ys),
		"line_hits", st.Hits, "line_misses", st.Misses, "line_hit_rate", st.HitRate)
	return line, nil
}

// NewFig creates a figure with opts, makes it current and draws it.
func (p *Plotter) NewFig(opts ...FigureOption) (*Figure, error) {
	all := make([]FigureOption, 0, len(p.figOpts)+len(opts))
	all = append(all, p.figOpts...)
	all = append(all, opts...)

	fig := NewFigure(all...)
	if err := fig.Draw(); err != nil {
		return nil, err
	}
	p.current = fig
	return fig, nil
}

// SaveFig saves the current figure. See Figure.Save for formats.
func (p *Plotter) SaveFig(path string) error {
	return p.Figure().Save(path)
}

// LabelAxes sets both axis labels of the current figure, and the title
// unless title is empty. opts apply to every label set.
func (p *Plotter) LabelAxes(ylabel, xlabel, title string, opts ...TextOption) {
	a := p.Figure().axes
	a.SetYLabel(ylabel, opts...)
	a.SetXLabel(xlabel, opts...)
	if title != "" {
		a.SetTitle(title, opts...)
	}
}

// XLabel sets the x axis label of the current figure.
func (p *Plotter) XLabel(s string, opts ...TextOption) { p.Figure().axes.SetXLabel(s, opts...) }

// YLabel sets the y axis label of the current figure.
func (p *Plotter) YLabel(s string, opts ...TextOption) { p.Figure().axes.SetYLabel(s, opts...) }

// Title sets the title of the current figure.
func (p *Plotter) Title(s string, opts ...TextOption) { p.Figure().axes.SetTitle(s, opts...) }

// Legend shows a legend of the labeled lines on the current figure.
func (p *Plotter) Legend(opts ...LegendOption) { p.Figure().axes.SetLegend(opts...) }

// NoLegend hides the legend of the current figure.
func (p *Plotter) NoLegend() { p.Figure().axes.HideLegend() }
