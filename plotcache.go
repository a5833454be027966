package simplot

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/simplot/cache"
)

// PlotCache maps each figure to its SurfaceState. States are created on
// first access and never evicted; they live as long as the cache.
//
// A PlotCache is not safe for concurrent use.
type PlotCache struct {
	states *cache.Map[*Figure, *SurfaceState]
}

// NewPlotCache creates an empty cache.
func NewPlotCache() *PlotCache {
	return &PlotCache{states: cache.New[*Figure, *SurfaceState]()}
}

// State returns the state of fig, creating an empty one on first use.
// Repeated calls with the same figure return the same pointer.
func (c *PlotCache) State(fig *Figure) *SurfaceState {
	if fig == nil {
		panic("simplot: PlotCache.State called with nil figure")
	}
	return c.states.GetOrCreate(fig, func() *SurfaceState {
		Logger().Debug("surface state created", "figures", c.states.Len()+1)
		return newSurfaceState(fig)
	})
}

// Len returns the number of figures with a state.
func (c *PlotCache) Len() int { return c.states.Len() }

// Stats reports how often State found an existing state.
func (c *PlotCache) Stats() cache.Stats { return c.states.Stats() }

// SurfaceState holds the lines plotted on one figure, keyed by LineKey.
type SurfaceState struct {
	fig   *Figure
	lines *cache.Map[LineKey, *Line]

	// next color cycle entry for lines created without a color
	nextColor int
}

func newSurfaceState(fig *Figure) *SurfaceState {
	return &SurfaceState{
		fig:   fig,
		lines: cache.New[LineKey, *Line](),
	}
}

// Figure returns the figure this state belongs to.
func (s *SurfaceState) Figure() *Figure { return s.fig }

// Line returns the line cached under key, or creates it.
//
// A new line takes its color from key.Color, else from the format string,
// else from the color cycle. Width defaults to 2 and alpha to 0.6 unless
// set by opts. The new line is attached to the figure's axes.
// On a cache hit opts are ignored.
func (s *SurfaceState) Line(key LineKey, opts ...LineOption) (*Line, error) {
	return s.lines.TryGetOrCreate(key, func() (*Line, error) {
		l, err := newLine(key, newLineConfig(opts), s.cycleColor)
		if err != nil {
			return nil, err
		}
		s.fig.axes.AddLine(l)
		Logger().Debug("line created", "style", key.Style, "color", key.Color, "lines", s.lines.Len()+1)
		return l, nil
	})
}

// Lines returns the cached lines in creation order.
func (s *SurfaceState) Lines() []*Line {
	keys := s.lines.Keys()
	out := make([]*Line, 0, len(keys))
	for _, k := range keys {
		if l, ok := s.lines.Get(k); ok {
			out = append(out, l)
		}
	}
	return out
}

// Len returns the number of cached lines.
func (s *SurfaceState) Len() int { return s.lines.Len() }

// Stats reports how often Line found an existing line. Clear keeps the
// counters.
func (s *SurfaceState) Stats() cache.Stats { return s.lines.Stats() }

// Clear forgets all cached lines. Lines already on the figure stay drawn;
// the next Line call for any key creates a new line.
func (s *SurfaceState) Clear() {
	s.lines.Clear()
}

func (s *SurfaceState) cycleColor() gg.RGBA {
	c := gg.Hex(cycle[s.nextColor%len(cycle)])
	s.nextColor++
	return c
}
