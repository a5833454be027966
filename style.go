package simplot

import (
	"fmt"

	"github.com/gogpu/gg"
)

// DefaultStyle is the format used when a plot call names none:
// blue circle markers joined by a solid line.
const DefaultStyle = "bo-"

// LineStyle is the stroke pattern of a line.
type LineStyle string

// Line styles accepted in format strings.
const (
	LineNone    LineStyle = ""
	LineSolid   LineStyle = "-"
	LineDashed  LineStyle = "--"
	LineDashDot LineStyle = "-."
	LineDotted  LineStyle = ":"
)

// Marker is the symbol drawn at each data point.
type Marker byte

// Markers accepted in format strings.
const (
	MarkerNone          Marker = 0
	MarkerPoint         Marker = '.'
	MarkerPixel         Marker = ','
	MarkerCircle        Marker = 'o'
	MarkerTriangleDown  Marker = 'v'
	MarkerTriangleUp    Marker = '^'
	MarkerTriangleLeft  Marker = '<'
	MarkerTriangleRight Marker = '>'
	MarkerSquare        Marker = 's'
	MarkerDiamond       Marker = 'D'
	MarkerThinDiamond   Marker = 'd'
	MarkerPentagon      Marker = 'p'
	MarkerStar          Marker = '*'
	MarkerHexagon       Marker = 'h'
	MarkerPlus          Marker = '+'
	MarkerX             Marker = 'x'
	MarkerVLine         Marker = '|'
	MarkerHLine         Marker = '_'
)

func isMarker(c byte) bool {
	switch Marker(c) {
	case MarkerPoint, MarkerPixel, MarkerCircle, MarkerTriangleDown, MarkerTriangleUp,
		MarkerTriangleLeft, MarkerTriangleRight, MarkerSquare, MarkerDiamond, MarkerThinDiamond,
		MarkerPentagon, MarkerStar, MarkerHexagon, MarkerPlus, MarkerX, MarkerVLine, MarkerHLine:
		return true
	}
	return false
}

// Style is a parsed format string.
type Style struct {
	Color    gg.RGBA
	HasColor bool
	Marker   Marker
	Line     LineStyle
}

// ParseStyle parses a short format string of the form [color][marker][line]
// in any order, for example "bo-", "r--", "^k:" or "C2s".
//
// Each part may appear at most once. A string with a marker and no line
// style draws markers only; a string with neither draws a solid line.
// A full color name or hex value on its own ("orange", "#ff8800") is
// accepted as a color-only format.
func ParseStyle(format string) (Style, error) {
	var st Style
	if len(format) > 1 {
		if c, err := ParseColor(format); err == nil {
			st.Color, st.HasColor, st.Line = c, true, LineSolid
			return st, nil
		}
	}

	lineSet := false
	for i := 0; i < len(format); i++ {
		c := format[i]

		if i+1 < len(format) {
			if two := LineStyle(format[i : i+2]); two == LineDashed || two == LineDashDot {
				if lineSet {
					return Style{}, styleError(format, "two line styles")
				}
				st.Line, lineSet = two, true
				i++
				continue
			}
		}

		switch {
		case c == '-' || c == ':':
			if lineSet {
				return Style{}, styleError(format, "two line styles")
			}
			st.Line, lineSet = LineStyle(c), true
		case isMarker(c):
			if st.Marker != MarkerNone {
				return Style{}, styleError(format, "two markers")
			}
			st.Marker = Marker(c)
		case c == 'C' && i+1 < len(format) && '0' <= format[i+1] && format[i+1] <= '9':
			if st.HasColor {
				return Style{}, styleError(format, "two colors")
			}
			st.Color, st.HasColor = gg.Hex(cycle[format[i+1]-'0']), true
			i++
		default:
			col, ok := shortColors[c]
			if !ok {
				return Style{}, styleError(format, fmt.Sprintf("unrecognized character %q", c))
			}
			if st.HasColor {
				return Style{}, styleError(format, "two colors")
			}
			st.Color, st.HasColor = col, true
		}
	}

	if !lineSet && st.Marker == MarkerNone {
		st.Line = LineSolid
	}
	return st, nil
}

func styleError(format, reason string) error {
	return fmt.Errorf("%w %q: %s", ErrInvalidStyle, format, reason)
}
