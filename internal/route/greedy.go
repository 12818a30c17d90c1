package route

import (
	"image"

	"github.com/zyedidia/generic/mapset"

	"github.com/voidshard/citynet/internal/field"
)

// Greedy steps straight at the goal, picking the cheapest of a handful of
// goal-ward offsets at each step. It never searches so it is only used to
// bridge segments that A* could not. Steps never revisit a cell & never
// increase the manhattan distance to the goal.
type Greedy struct {
	costs *field.Field[float64]
	cfg   Config
}

// NewGreedy returns a greedy stepper over the given costs
func NewGreedy(costs *field.Field[float64], cfg Config) *Greedy {
	return &Greedy{costs: costs, cfg: cfg}
}

// Route walks from start towards goal. It stops after width+height steps.
func (g *Greedy) Route(req *Request) ([]image.Point, bool) {
	return g.walk(req.Start, req.Goal)
}

func (g *Greedy) walk(start, goal image.Point) ([]image.Point, bool) {
	if !g.costs.InBounds(start) || !g.costs.InBounds(goal) {
		return nil, false
	}

	limit := g.costs.Width + g.costs.Height
	path := []image.Point{start}
	visited := mapset.Of(start)
	cur := start

	for cur != goal && len(path) <= limit {
		sx, sy := sign(goal.X-cur.X), sign(goal.Y-cur.Y)
		candidates := [5]image.Point{{sx, sy}, {sx, 0}, {0, sy}, {sx, -sy}, {-sx, sy}}

		best := image.Point{}
		bestCost := 0.0
		found := false
		for _, c := range candidates {
			if c == (image.Point{}) {
				continue
			}
			n := cur.Add(c)
			if !g.costs.InBounds(n) || visited.Has(n) {
				continue
			}
			if manhattan(n, goal) > manhattan(cur, goal) {
				continue
			}
			cost := g.costs.At(n)
			if !found || cost < bestCost {
				best, bestCost, found = n, cost, true
			}
		}
		if !found {
			return path, false
		}
		if bestCost >= g.cfg.BlockingCost && g.cfg.Water == WaterReject {
			return path, false
		}

		path = append(path, best)
		visited.Put(best)
		cur = best
	}

	return path, cur == goal
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
