package simplot

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/simplot/internal/seq"
)

// DefaultMargin is the padding added on each side of the data limits,
// as a fraction of the data span.
const DefaultMargin = 0.02

// Text is a styled string: an axis label or a title.
type Text struct {
	S     string
	Size  float64
	Color gg.RGBA
}

func newText(s string, opts []TextOption) Text {
	t := Text{S: s, Size: DefaultFontSize, Color: gg.Black}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

type legend struct {
	visible bool
	loc     Location
}

// interval is a closed range [lo, hi].
type interval struct {
	lo, hi float64
}

func (iv interval) span() float64 { return iv.hi - iv.lo }

// Axes is the plotting area of a figure: its lines, labels and limits.
type Axes struct {
	lines []*Line

	title  Text
	xlabel Text
	ylabel Text

	// data limits from the last Relim
	dataX, dataY interval
	hasData      bool

	// view limits
	viewX, viewY interval
	autoX, autoY bool

	xmargin, ymargin float64
	legend           legend
}

func newAxes() *Axes {
	return &Axes{
		title:   newText("", []TextOption{WithFontSize(14)}),
		xlabel:  newText("", nil),
		ylabel:  newText("", nil),
		viewX:   interval{0, 1},
		viewY:   interval{0, 1},
		autoX:   true,
		autoY:   true,
		xmargin: DefaultMargin,
		ymargin: DefaultMargin,
	}
}

// AddLine attaches a line. Adding a line twice has no effect.
func (a *Axes) AddLine(l *Line) {
	for _, have := range a.lines {
		if have == l {
			return
		}
	}
	a.lines = append(a.lines, l)
}

// Lines returns the attached lines in the order they were added.
func (a *Axes) Lines() []*Line {
	out := make([]*Line, len(a.lines))
	copy(out, a.lines)
	return out
}

// Relim recomputes the data limits from the finite points of all lines.
func (a *Axes) Relim() {
	a.hasData = false
	for _, l := range a.lines {
		xs, ys := seq.Pairs(l.xs, l.ys)
		xlo, xhi, okx := seq.Limits(xs)
		ylo, yhi, oky := seq.Limits(ys)
		if !okx || !oky {
			continue
		}
		if !a.hasData {
			a.dataX, a.dataY = interval{xlo, xhi}, interval{ylo, yhi}
			a.hasData = true
			continue
		}
		a.dataX = interval{math.Min(a.dataX.lo, xlo), math.Max(a.dataX.hi, xhi)}
		a.dataY = interval{math.Min(a.dataY.lo, ylo), math.Max(a.dataY.hi, yhi)}
	}
}

// DataLim returns the data limits found by the last Relim.
// ok is false when no line has a finite point.
func (a *Axes) DataLim() (xlo, xhi, ylo, yhi float64, ok bool) {
	return a.dataX.lo, a.dataX.hi, a.dataY.lo, a.dataY.hi, a.hasData
}

// SetAutoscale turns autoscaling on or off for each axis.
func (a *Axes) SetAutoscale(x, y bool) {
	a.autoX, a.autoY = x, y
}

// AutoscaleView sets the view limits of every autoscaled axis to the data
// limits plus margins. Without data the view stays at [0, 1].
func (a *Axes) AutoscaleView() {
	if !a.hasData {
		if a.autoX {
			a.viewX = interval{0, 1}
		}
		if a.autoY {
			a.viewY = interval{0, 1}
		}
		return
	}
	if a.autoX {
		a.viewX = pad(nonsingular(a.dataX), a.xmargin)
	}
	if a.autoY {
		a.viewY = pad(nonsingular(a.dataY), a.ymargin)
	}
}

// SetMargins sets the padding fractions used by AutoscaleView.
// Negative values are treated as zero.
func (a *Axes) SetMargins(x, y float64) {
	a.xmargin, a.ymargin = math.Max(x, 0), math.Max(y, 0)
}

// Margins returns the padding fractions.
func (a *Axes) Margins() (x, y float64) { return a.xmargin, a.ymargin }

// XLim returns the x view limits.
func (a *Axes) XLim() (lo, hi float64) { return a.viewX.lo, a.viewX.hi }

// YLim returns the y view limits.
func (a *Axes) YLim() (lo, hi float64) { return a.viewY.lo, a.viewY.hi }

// SetXLim fixes the x view limits and turns off x autoscaling.
func (a *Axes) SetXLim(lo, hi float64) {
	a.viewX = nonsingular(interval{math.Min(lo, hi), math.Max(lo, hi)})
	a.autoX = false
}

// SetYLim fixes the y view limits and turns off y autoscaling.
func (a *Axes) SetYLim(lo, hi float64) {
	a.viewY = nonsingular(interval{math.Min(lo, hi), math.Max(lo, hi)})
	a.autoY = false
}

// SetTitle sets the axes title.
func (a *Axes) SetTitle(s string, opts ...TextOption) {
	a.title = newText(s, append([]TextOption{WithFontSize(14)}, opts...))
}

// SetXLabel sets the x axis label.
func (a *Axes) SetXLabel(s string, opts ...TextOption) { a.xlabel = newText(s, opts) }

// SetYLabel sets the y axis label.
func (a *Axes) SetYLabel(s string, opts ...TextOption) { a.ylabel = newText(s, opts) }

// Title returns the axes title.
func (a *Axes) Title() Text { return a.title }

// XLabel returns the x axis label.
func (a *Axes) XLabel() Text { return a.xlabel }

// YLabel returns the y axis label.
func (a *Axes) YLabel() Text { return a.ylabel }

// SetLegend shows the legend.
func (a *Axes) SetLegend(opts ...LegendOption) {
	lg := legend{visible: true, loc: a.legend.loc}
	for _, opt := range opts {
		opt(&lg)
	}
	a.legend = lg
}

// HideLegend hides the legend.
func (a *Axes) HideLegend() { a.legend.visible = false }

// LegendVisible reports whether the legend is drawn.
func (a *Axes) LegendVisible() bool { return a.legend.visible }

// nonsingular widens an empty interval so it can be drawn.
func nonsingular(iv interval) interval {
	if iv.span() > 0 {
		return iv
	}
	if iv.lo == 0 {
		return interval{-1, 1}
	}
	d := 0.05 * math.Abs(iv.lo)
	return interval{iv.lo - d, iv.hi + d}
}

// pad widens iv by m of its span on each side. The unpadded interval is
// kept when padding would overflow.
func pad(iv interval, m float64) interval {
	d := iv.span() * m
	out := interval{iv.lo - d, iv.hi + d}
	if math.IsInf(out.lo, 0) || math.IsInf(out.hi, 0) || math.IsNaN(d) {
		return iv
	}
	return out
}
