package simplot

import (
	"fmt"
	"slices"

	"github.com/gogpu/gg"
)

// LineKey identifies a line within a figure: the format string and the
// explicit color option, empty when none was given.
type LineKey struct {
	Style string
	Color string
}

// Line is a growable 2D line: its coordinate buffers plus how it is drawn.
// A Line is created by SurfaceState.Line and attached to a figure's axes.
type Line struct {
	key   LineKey
	style Style
	color gg.RGBA

	width      float64
	alpha      float64
	markerSize float64
	label      string

	xs, ys []float64
}

// newLine builds an empty line for key. fallback supplies the color when
// neither the key nor the format string names one.
func newLine(key LineKey, cfg *lineConfig, fallback func() gg.RGBA) (*Line, error) {
	st, err := ParseStyle(key.Style)
	if err != nil {
		return nil, err
	}

	var col gg.RGBA
	switch {
	case key.Color != "":
		if col, err = ParseColor(key.Color); err != nil {
			return nil, err
		}
	case st.HasColor:
		col = st.Color
	}

	attrs := Underride(cfg.attrs, lineDefaults())
	l := &Line{
		key:        key,
		style:      st,
		color:      col,
		width:      attrs[attrLineWidth],
		alpha:      attrs[attrAlpha],
		markerSize: attrs[attrMarkerSize],
		label:      cfg.label,
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	// the cycle only advances for lines that are actually created
	if key.Color == "" && !st.HasColor {
		l.color = fallback()
	}
	return l, nil
}

func (l *Line) validate() error {
	if l.width < 0 {
		return fmt.Errorf("%w: line width %v < 0", ErrInvalidOption, l.width)
	}
	if l.alpha < 0 || l.alpha > 1 {
		return fmt.Errorf("%w: alpha %v outside [0, 1]", ErrInvalidOption, l.alpha)
	}
	if l.markerSize < 0 {
		return fmt.Errorf("%w: marker size %v < 0", ErrInvalidOption, l.markerSize)
	}
	return nil
}

// Key returns the cache key of the line.
func (l *Line) Key() LineKey { return l.key }

// Style returns the parsed format string.
func (l *Line) Style() Style { return l.style }

// Color returns the resolved line color, without alpha applied.
func (l *Line) Color() gg.RGBA { return l.color }

// Width returns the stroke width in pixels.
func (l *Line) Width() float64 { return l.width }

// Alpha returns the line opacity.
func (l *Line) Alpha() float64 { return l.alpha }

// MarkerSize returns the marker diameter in pixels.
func (l *Line) MarkerSize() float64 { return l.markerSize }

// Label returns the legend label, empty if unlabeled.
func (l *Line) Label() string { return l.label }

// SetLabel changes the legend label.
func (l *Line) SetLabel(label string) { l.label = label }

// XData returns a copy of the x coordinates.
func (l *Line) XData() []float64 { return slices.Clone(l.xs) }

// YData returns a copy of the y coordinates.
func (l *Line) YData() []float64 { return slices.Clone(l.ys) }

// Len returns the number of y values.
func (l *Line) Len() int { return len(l.ys) }

// SetData replaces both coordinate sequences. The slices are stored as
// given; callers must not modify them afterwards.
func (l *Line) SetData(xs, ys []float64) {
	l.xs, l.ys = xs, ys
}
