package simplot

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// shortColors are the single-letter colors accepted in format strings.
var shortColors = map[byte]gg.RGBA{
	'b': gg.RGB(0, 0, 1),
	'g': gg.RGB(0, 0.5, 0),
	'r': gg.RGB(1, 0, 0),
	'c': gg.RGB(0, 0.75, 0.75),
	'm': gg.RGB(0.75, 0, 0.75),
	'y': gg.RGB(0.75, 0.75, 0),
	'k': gg.RGB(0, 0, 0),
	'w': gg.RGB(1, 1, 1),
}

// namedColors are the color names accepted by WithColor.
var namedColors = map[string]string{
	"blue":    "#0000ff",
	"green":   "#008000",
	"red":     "#ff0000",
	"cyan":    "#00bfbf",
	"magenta": "#bf00bf",
	"yellow":  "#bfbf00",
	"black":   "#000000",
	"white":   "#ffffff",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"brown":   "#a52a2a",
	"pink":    "#ffc0cb",
	"gray":    "#808080",
	"grey":    "#808080",
	"olive":   "#808000",
	"navy":    "#000080",
}

// cycle is the tab10 palette handed out to lines created without a color.
var cycle = []string{
	"#1f77b4", // tab:blue
	"#ff7f0e", // tab:orange
	"#2ca02c", // tab:green
	"#d62728", // tab:red
	"#9467bd", // tab:purple
	"#8c564b", // tab:brown
	"#e377c2", // tab:pink
	"#7f7f7f", // tab:gray
	"#bcbd22", // tab:olive
	"#17becf", // tab:cyan
}

var tabNames = []string{"blue", "orange", "green", "red", "purple", "brown", "pink", "gray", "olive", "cyan"}

// ParseColor converts a color spec to gg.RGBA.
//
// Accepted forms: a format-string letter ("b", "k"), a name ("orange"),
// a tab10 name ("tab:green"), or hex ("#f80", "#ff8800", "#ff880080").
func ParseColor(spec string) (gg.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if len(s) == 1 {
		if c, ok := shortColors[s[0]]; ok {
			return c, nil
		}
	}
	if hex, ok := namedColors[s]; ok {
		return gg.Hex(hex), nil
	}
	if name, ok := strings.CutPrefix(s, "tab:"); ok {
		for i, n := range tabNames {
			if n == name {
				return gg.Hex(cycle[i]), nil
			}
		}
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok && validHex(hex) {
		return gg.Hex(hex), nil
	}
	return gg.RGBA{}, fmt.Errorf("%w: unknown color %q", ErrInvalidStyle, spec)
}

func validHex(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

// withAlpha returns c with its alpha scaled by a.
func withAlpha(c gg.RGBA, a float64) gg.RGBA {
	c.A *= a
	return c
}
