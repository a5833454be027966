// Command simdemo runs a logistic growth simulation with random shocks and
// plots it step by step with simplot.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/gogpu/simplot"
)

func main() {
	var (
		steps    = flag.Int("steps", 100, "number of simulation steps")
		rate     = flag.Float64("rate", 0.25, "net growth rate per step")
		capacity = flag.Float64("capacity", 1000, "carrying capacity")
		shock    = flag.Float64("shock", 0.05, "probability of a shock per step")
		seed     = flag.Uint64("seed", 1, "random seed")
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 600, "image height")
		output   = flag.String("output", "simdemo.png", "output file (.png, .jpg)")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		simplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	params := simplot.Underride(map[string]float64{
		"rate":     *rate,
		"capacity": *capacity,
		"shock":    *shock,
	}, defaultParams())

	p := simplot.NewPlotter(simplot.WithDefaultFigure(simplot.WithSize(*width, *height)))
	rng := rand.New(rand.NewPCG(*seed, *seed))

	state, err := run(p, rng, params, *steps)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	p.LabelAxes("population", "step", "Logistic growth with shocks")
	p.Legend(simplot.WithLegendLocation(simplot.LowerRight))
	if err := p.SaveFig(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	if err := simplot.PrintState(os.Stdout, state); err != nil {
		log.Fatalf("Failed to print state: %v", err)
	}
	log.Printf("Plot saved to %s (%dx%d)\n", *output, *width, *height)
}

func defaultParams() map[string]float64 {
	return map[string]float64{
		"rate":     0.25,
		"capacity": 1000,
		"shock":    0.05,
		"initial":  10,
		"severity": 0.5,
	}
}

// run steps the model, plotting the population and the capacity line
// after every step, and returns the final state.
func run(p *simplot.Plotter, rng *rand.Rand, params map[string]float64, steps int) (*simplot.State, error) {
	state := simplot.NewState(
		simplot.F("step", 0),
		simplot.F("population", params["initial"]),
		simplot.F("shocks", 0),
	)

	for t := range steps {
		pop := state.Float("population")
		pop += params["rate"] * pop * (1 - pop/params["capacity"])
		if simplot.FlipRand(rng, params["shock"]) {
			pop *= params["severity"]
			state.Set("shocks", state.Int("shocks")+1)
		}
		state.Set("step", t+1)
		state.Set("population", pop)

		x := float64(t + 1)
		if _, err := p.Plot(simplot.Point(x, pop), simplot.WithLabel("population")); err != nil {
			return nil, err
		}
		if _, err := p.Plot(simplot.Styled(simplot.Point(x, params["capacity"]), "k--"),
			simplot.WithLabel("capacity"), simplot.WithLineWidth(1)); err != nil {
			return nil, err
		}
	}
	return state, nil
}
