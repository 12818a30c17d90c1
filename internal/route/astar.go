package route

import (
	"image"
	"math"

	"github.com/zyedidia/generic/heap"

	"github.com/voidshard/citynet/internal/field"
)

var compass = [8]image.Point{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// AStar is a bounded A* search over a cost field.
type AStar struct {
	costs *field.Field[float64]
	cfg   Config
}

// NewAStar returns a search over the given costs
func NewAStar(costs *field.Field[float64], cfg Config) *AStar {
	return &AStar{costs: costs, cfg: cfg}
}

// Route attempts a direct search with the configured iteration budget.
// Routes longer than the hierarchical threshold are declined outright.
func (a *AStar) Route(req *Request) ([]image.Point, bool) {
	if distance(req.Start, req.Goal) > a.cfg.HierarchicalThreshold {
		return nil, false
	}
	return a.search(req.Start, req.Goal, req.Roads, a.cfg.IterationBudget)
}

// search runs A* from start to goal. It pops at most `budget` nodes before
// giving up, so the result is always returned in bounded time.
func (a *AStar) search(start, goal image.Point, roads *RoadSet, budget int) ([]image.Point, bool) {
	if !a.costs.InBounds(start) || !a.costs.InBounds(goal) {
		return nil, false
	}
	if start == goal {
		return []image.Point{start}, true
	}

	size := len(a.costs.Data)
	gScore := make([]float64, size)
	for i := range gScore {
		gScore[i] = math.Inf(1)
	}
	came := make([]int32, size)
	for i := range came {
		came[i] = -1
	}
	closed := make([]bool, size)

	si := a.costs.Index(start)
	gi := a.costs.Index(goal)
	gScore[si] = 0

	open := heap.New[node](nodeLess)
	open.Push(node{i: si, f: a.heuristic(start, goal)})

	for iterations := 0; open.Size() > 0; iterations++ {
		if iterations >= budget {
			return nil, false
		}

		cur, _ := open.Pop()
		if cur.i == gi {
			return a.reconstruct(came, gi), true
		}
		if closed[cur.i] {
			continue
		}
		closed[cur.i] = true

		p := a.costs.Point(cur.i)
		for _, d := range compass {
			n := p.Add(d)
			if !a.costs.InBounds(n) {
				continue
			}
			ni := a.costs.Index(n)
			if closed[ni] {
				continue
			}

			cost := a.costs.Data[ni]
			if cost >= a.cfg.BlockingCost {
				continue
			}
			if d.X != 0 && d.Y != 0 {
				cost *= a.cfg.DiagonalFactor
			}
			if roads != nil && roads.Has(n) {
				cost *= a.cfg.RoadDiscount
			}

			g := gScore[cur.i] + cost
			if g >= gScore[ni] {
				continue
			}
			gScore[ni] = g
			came[ni] = int32(cur.i)
			open.Push(node{i: ni, f: g + a.heuristic(n, goal)})
		}
	}

	return nil, false
}

func (a *AStar) heuristic(p, goal image.Point) float64 {
	return distance(p, goal) * a.cfg.HeuristicWeight
}

// reconstruct walks the parent chain back from the goal
func (a *AStar) reconstruct(came []int32, goal int) []image.Point {
	path := []image.Point{}
	for i := int32(goal); i >= 0; i = came[i] {
		path = append(path, a.costs.Point(int(i)))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// --- Priority queue ---

type node struct {
	i int
	f float64
}

// nodeLess orders the open set, lowest f first. Stale entries are left in
// place and skipped once their cell is closed.
func nodeLess(a, b node) bool {
	return a.f < b.f
}

func distance(a, b image.Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
