package simplot

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestDefaultFigureConfig(t *testing.T) {
	cfg := defaultFigureConfig()
	if cfg.width != DefaultWidth || cfg.height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", cfg.width, cfg.height, DefaultWidth, DefaultHeight)
	}
	if cfg.background != gg.White {
		t.Errorf("background = %+v, want white", cfg.background)
	}
	if cfg.title != "" {
		t.Errorf("title = %q, want empty", cfg.title)
	}
}

func TestFigureOptions(t *testing.T) {
	cfg := defaultFigureConfig()
	for _, opt := range []FigureOption{
		WithSize(300, 200),
		WithBackground(gg.Black),
		WithFigureTitle("run 1"),
	} {
		opt(&cfg)
	}
	if cfg.width != 300 || cfg.height != 200 {
		t.Errorf("size = %dx%d, want 300x200", cfg.width, cfg.height)
	}
	if cfg.background != gg.Black {
		t.Errorf("background = %+v, want black", cfg.background)
	}
	if cfg.title != "run 1" {
		t.Errorf("title = %q, want %q", cfg.title, "run 1")
	}
}

func TestLineOptions(t *testing.T) {
	cfg := newLineConfig([]LineOption{
		WithColor("orange"),
		WithLineWidth(3),
		WithAlpha(0.25),
		WithMarkerSize(9),
		WithLabel("pop"),
	})
	if cfg.color != "orange" || cfg.label != "pop" {
		t.Errorf("color/label = %q/%q", cfg.color, cfg.label)
	}
	want := map[string]float64{attrLineWidth: 3, attrAlpha: 0.25, attrMarkerSize: 9}
	for k, v := range want {
		if cfg.attrs[k] != v {
			t.Errorf("attrs[%q] = %v, want %v", k, cfg.attrs[k], v)
		}
	}
}

func TestLineConfigLeavesUnsetAttrsOut(t *testing.T) {
	cfg := newLineConfig([]LineOption{WithAlpha(1)})
	if _, ok := cfg.attrs[attrLineWidth]; ok {
		t.Error("unset line width must not appear in attrs, or defaults cannot fill it")
	}
	attrs := Underride(cfg.attrs, lineDefaults())
	if attrs[attrLineWidth] != 2 || attrs[attrAlpha] != 1 {
		t.Errorf("after defaults: %v", attrs)
	}
}

func TestTextOptions(t *testing.T) {
	txt := newText("x", []TextOption{WithFontSize(18), WithTextColor(gg.Red)})
	if txt.Size != 18 || txt.Color != gg.Red {
		t.Errorf("text = %+v, want size 18 in red", txt)
	}
	txt = newText("x", []TextOption{WithFontSize(-1)})
	if txt.Size != DefaultFontSize {
		t.Errorf("non-positive size should keep default, got %v", txt.Size)
	}
}
