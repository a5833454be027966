// Package simplot makes live line plots out of simulation loops.
//
// # Overview
//
// A simulation computes one new value per step. simplot keeps one growing
// line per format string and color on each figure, appends the new values
// to it, rescales the axes and redraws. The figure is rendered with gg and
// can be saved as PNG or JPEG at any point.
//
// # Quick Start
//
//	import "github.com/gogpu/simplot"
//
//	p := simplot.NewPlotter()
//	pop := 0.1
//	for range 50 {
//	    pop += 0.3 * pop * (1 - pop)
//	    p.Plot(simplot.Y(pop))
//	}
//	p.LabelAxes("population", "step", "Logistic growth")
//	p.SaveFig("growth.png")
//
// # Call Shapes
//
// Plot takes a Series, one of:
//   - YOnly: y values against their index
//   - YWithStyle: the same in a given format
//   - XY: y against x
//   - XYWithStyle: the same in a given format
//
// Y and Point build the common single-value forms. Formats follow the
// short [color][marker][line] notation, e.g. "bo-", "r--", "gs".
//
// # Caching
//
// A Plotter owns a PlotCache mapping each Figure to a SurfaceState, which
// maps each LineKey to a Line. Lookups never fail: a miss creates the
// entry. Nothing is evicted. Callers that need a fresh line on the same
// figure call SurfaceState.Clear.
//
// # Simulation Helpers
//
// State holds named simulation variables in the order they were set and
// PrintState lists them. Flip draws a biased coin. Underride fills
// defaults into a map.
//
// # Concurrency
//
// Nothing in simplot is safe for concurrent use except SetLogger and
// Logger.
package simplot
