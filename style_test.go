package simplot

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		format   string
		color    gg.RGBA
		hasColor bool
		marker   Marker
		line     LineStyle
	}{
		{"bo-", gg.RGB(0, 0, 1), true, MarkerCircle, LineSolid},
		{"r--", gg.RGB(1, 0, 0), true, MarkerNone, LineDashed},
		{"^k:", gg.RGB(0, 0, 0), true, MarkerTriangleUp, LineDotted},
		{"g-.", gg.RGB(0, 0.5, 0), true, MarkerNone, LineDashDot},
		{"s", gg.RGBA{}, false, MarkerSquare, LineNone},
		{"-", gg.RGBA{}, false, MarkerNone, LineSolid},
		{"", gg.RGBA{}, false, MarkerNone, LineSolid},
		{"m", gg.RGB(0.75, 0, 0.75), true, MarkerNone, LineSolid},
		{"C1x", gg.Hex("#ff7f0e"), true, MarkerX, LineNone},
		{"orange", gg.Hex("#ffa500"), true, MarkerNone, LineSolid},
		{"#00ff00", gg.RGB(0, 1, 0), true, MarkerNone, LineSolid},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			st, err := ParseStyle(tt.format)
			if err != nil {
				t.Fatalf("ParseStyle(%q) error: %v", tt.format, err)
			}
			if st.HasColor != tt.hasColor {
				t.Errorf("HasColor = %v, want %v", st.HasColor, tt.hasColor)
			}
			if tt.hasColor && !colorsClose(st.Color, tt.color) {
				t.Errorf("Color = %+v, want %+v", st.Color, tt.color)
			}
			if st.Marker != tt.marker {
				t.Errorf("Marker = %q, want %q", st.Marker, tt.marker)
			}
			if st.Line != tt.line {
				t.Errorf("Line = %q, want %q", st.Line, tt.line)
			}
		})
	}
}

func TestParseStyleInvalid(t *testing.T) {
	for _, format := range []string{"bq", "brr", "oo", "--:", "-x-", "bg", "C"} {
		if _, err := ParseStyle(format); !errors.Is(err, ErrInvalidStyle) {
			t.Errorf("ParseStyle(%q) error = %v, want ErrInvalidStyle", format, err)
		}
	}
}
