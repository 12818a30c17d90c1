package route

import (
	"image"

	"github.com/voidshard/citynet/internal/field"
	"github.com/voidshard/citynet/internal/line"
)

// Hierarchical chains short searches between waypoints laid along the
// straight line start -> goal. Any segment the search cannot finish is
// bridged with a Greedy walk.
type Hierarchical struct {
	costs  *field.Field[float64]
	cfg    Config
	astar  *AStar
	greedy *Greedy
}

// NewHierarchical returns a waypoint chaining strategy
func NewHierarchical(costs *field.Field[float64], cfg Config) *Hierarchical {
	return &Hierarchical{
		costs:  costs,
		cfg:    cfg,
		astar:  NewAStar(costs, cfg),
		greedy: NewGreedy(costs, cfg),
	}
}

// Route finds a path start -> waypoints -> goal.
func (h *Hierarchical) Route(req *Request) ([]image.Point, bool) {
	if !h.costs.InBounds(req.Start) || !h.costs.InBounds(req.Goal) {
		return nil, false
	}

	// segments see the cells laid by the segments before them
	var roads *RoadSet
	if req.Roads != nil {
		roads = req.Roads.Clone()
	} else {
		roads = NewRoadSet(h.costs.Width, h.costs.Height)
	}

	points := append([]image.Point{req.Start}, h.waypoints(req.Start, req.Goal)...)
	points = append(points, req.Goal)

	path := []image.Point{req.Start}
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		if a == b {
			continue
		}

		mh := manhattan(a, b)
		budget := h.cfg.SegmentBudgetMin
		if mh*mh > budget {
			budget = mh * mh
		}

		segment, ok := h.astar.search(a, b, roads, budget)
		if !ok {
			segment, ok = h.greedy.walk(a, b)
			if !ok {
				return nil, false
			}
		}

		// the first cell of each segment is the last cell of the previous one
		path = append(path, segment[1:]...)
		for _, p := range segment {
			roads.Add(p)
		}
	}

	if path[len(path)-1] != req.Goal {
		return nil, false
	}
	return path, true
}

// waypoints returns the interior waypoints between start & goal, each
// moved to the cheapest cell near its ideal position.
func (h *Hierarchical) waypoints(start, goal image.Point) []image.Point {
	spacing := h.cfg.WaypointSpacing
	if spacing < 1 {
		spacing = 1
	}
	count := chebyshev(start, goal) / spacing
	if count < 2 {
		count = 2
	}

	out := []image.Point{}
	for i := 1; i < count; i++ {
		wp := line.Lerp(start, goal, float64(i)/float64(count))
		out = append(out, h.relocate(wp))
	}
	return out
}

// relocate returns the cheapest cell within the search radius (chebyshev) of p.
// Ties go to the first cell found scanning row by row.
func (h *Hierarchical) relocate(p image.Point) image.Point {
	r := h.cfg.WaypointSearchRadius
	best := p
	bestCost := h.costs.At(p)

	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			n := p.Add(image.Pt(dx, dy))
			if !h.costs.InBounds(n) {
				continue
			}
			if c := h.costs.At(n); c < bestCost {
				best, bestCost = n, c
			}
		}
	}
	return best
}

func manhattan(a, b image.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func chebyshev(a, b image.Point) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
