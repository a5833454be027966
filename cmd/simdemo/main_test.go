package main

import (
	"math/rand/v2"
	"testing"

	"github.com/gogpu/simplot"
)

func TestRun(t *testing.T) {
	p := simplot.NewPlotter(simplot.WithDefaultFigure(simplot.WithSize(200, 150)))
	params := simplot.Underride(map[string]float64{"shock": 0}, defaultParams())

	state, err := run(p, rand.New(rand.NewPCG(1, 1)), params, 20)
	if err != nil {
		t.Fatalf("run() = %v", err)
	}
	if state.Int("step") != 20 {
		t.Errorf("step = %d, want 20", state.Int("step"))
	}
	if state.Int("shocks") != 0 {
		t.Errorf("shocks = %d, want 0 with zero shock probability", state.Int("shocks"))
	}
	if pop := state.Float("population"); pop <= params["initial"] || pop > params["capacity"] {
		t.Errorf("population = %v, want growth toward capacity", pop)
	}

	lines := p.State(nil).Lines()
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want population and capacity", len(lines))
	}
	for _, l := range lines {
		if l.Len() != 20 {
			t.Errorf("line %q has %d points, want 20", l.Label(), l.Len())
		}
	}
}

func TestRunCertainShock(t *testing.T) {
	p := simplot.NewPlotter(simplot.WithDefaultFigure(simplot.WithSize(100, 80)))
	params := simplot.Underride(map[string]float64{"shock": 1}, defaultParams())

	state, err := run(p, rand.New(rand.NewPCG(3, 3)), params, 5)
	if err != nil {
		t.Fatalf("run() = %v", err)
	}
	if state.Int("shocks") != 5 {
		t.Errorf("shocks = %d, want 5", state.Int("shocks"))
	}
}
