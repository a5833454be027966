package simplot

import (
	"math"
	"testing"
)

func TestAxesRelimMultipleLines(t *testing.T) {
	a := newAxes()
	l1 := &Line{xs: []float64{0, 1}, ys: []float64{5, 6}}
	l2 := &Line{xs: []float64{-3, 2}, ys: []float64{7, 4}}
	a.AddLine(l1)
	a.AddLine(l2)
	a.AddLine(l1)

	if n := len(a.Lines()); n != 2 {
		t.Fatalf("Lines() = %d, want 2 (duplicates ignored)", n)
	}

	a.Relim()
	xlo, xhi, ylo, yhi, ok := a.DataLim()
	if !ok || xlo != -3 || xhi != 2 || ylo != 4 || yhi != 7 {
		t.Errorf("DataLim() = (%v, %v, %v, %v, %v), want (-3, 2, 4, 7, true)", xlo, xhi, ylo, yhi, ok)
	}
}

func TestAxesAutoscaleSinglePoint(t *testing.T) {
	a := newAxes()
	a.AddLine(&Line{xs: []float64{0}, ys: []float64{10}})
	a.Relim()
	a.SetMargins(0, 0)
	a.AutoscaleView()

	xlo, xhi := a.XLim()
	if xlo != -1 || xhi != 1 {
		t.Errorf("XLim() = (%v, %v), want (-1, 1) around zero", xlo, xhi)
	}
	ylo, yhi := a.YLim()
	assertClose(t, "ylo", ylo, 9.5)
	assertClose(t, "yhi", yhi, 10.5)
}

func TestAxesMargins(t *testing.T) {
	a := newAxes()
	if x, y := a.Margins(); x != DefaultMargin || y != DefaultMargin {
		t.Errorf("default Margins() = (%v, %v), want %v", x, y, DefaultMargin)
	}
	a.SetMargins(0.1, -1)
	if x, y := a.Margins(); x != 0.1 || y != 0 {
		t.Errorf("Margins() = (%v, %v), want (0.1, 0)", x, y)
	}

	a.AddLine(&Line{xs: []float64{0, 10}, ys: []float64{0, 10}})
	a.Relim()
	a.AutoscaleView()
	xlo, xhi := a.XLim()
	ylo, yhi := a.YLim()
	assertClose(t, "xlo", xlo, -1)
	assertClose(t, "xhi", xhi, 11)
	assertClose(t, "ylo", ylo, 0)
	assertClose(t, "yhi", yhi, 10)
}

func TestAxesFixedLimits(t *testing.T) {
	a := newAxes()
	a.SetXLim(5, -5)
	if lo, hi := a.XLim(); lo != -5 || hi != 5 {
		t.Errorf("XLim() = (%v, %v), want (-5, 5)", lo, hi)
	}

	a.AddLine(&Line{xs: []float64{100, 200}, ys: []float64{1, 2}})
	a.Relim()
	a.AutoscaleView()
	if lo, hi := a.XLim(); lo != -5 || hi != 5 {
		t.Errorf("fixed XLim() changed by autoscale: (%v, %v)", lo, hi)
	}

	a.SetAutoscale(true, true)
	a.AutoscaleView()
	if lo, _ := a.XLim(); lo >= 100 {
		t.Errorf("re-enabled autoscale should pad below data, got lo=%v", lo)
	}
}

func TestAxesAutoscaleHugeValuesStayFinite(t *testing.T) {
	a := newAxes()
	a.AddLine(&Line{xs: []float64{0, 1}, ys: []float64{0, 1.78e308}})
	a.Relim()
	a.AutoscaleView()

	ylo, yhi := a.YLim()
	if math.IsInf(ylo, 0) || math.IsInf(yhi, 0) {
		t.Fatalf("YLim() = (%v, %v), want finite limits", ylo, yhi)
	}
	if ylo != 0 || yhi != 1.78e308 {
		t.Errorf("YLim() = (%v, %v), want unpadded (0, 1.78e308)", ylo, yhi)
	}
}
