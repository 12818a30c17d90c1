package citynet

import (
	"image"
	"log/slog"
	"math"

	"github.com/unixpickle/model3d/model2d"
	"github.com/zyedidia/generic/mapset"

	"github.com/voidshard/citynet/internal/field"
	"github.com/voidshard/citynet/internal/line"
	"github.com/voidshard/citynet/internal/route"
)

// edge is a pair of settlement indexes to be joined by a road
type edge struct {
	from, to  int
	redundant bool
}

// pairKey returns an order independent key for a, b
func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// networkComposer decides which settlements get roads & routes them.
type networkComposer struct {
	t     *Terrain
	cfg   *NetworkConfig
	costs *field.Field[float64]
	log   *slog.Logger

	planner *route.Planner
	roads   *route.RoadSet
}

func newNetworkComposer(t *Terrain, cfg *Config, costs *field.Field[float64]) *networkComposer {
	return &networkComposer{
		t:       t,
		cfg:     &cfg.Network,
		costs:   costs,
		log:     cfg.logger(),
		planner: route.NewPlanner(costs, cfg.Planner),
		roads:   route.NewRoadSet(t.Width, t.Height),
	}
}

// sampledCost is the mean cost of cells sampled along the straight line a -> b.
// Each sample is capped so a single lake can't dominate.
func (n *networkComposer) sampledCost(a, b image.Point) float64 {
	steps := int(line.Length(a, b))
	if steps == 0 {
		return 1
	}
	samples := line.Sample(a, b, minint(steps, n.cfg.Samples))

	total := 0.0
	for _, p := range samples {
		total += math.Min(n.costs.At(p), n.cfg.SampleCap)
	}
	return total / float64(len(samples))
}

// weights builds the symmetric edge weight matrix: euclidean distance times
// mean sampled cost.
func (n *networkComposer) weights(centers []image.Point) [][]float64 {
	w := make([][]float64, len(centers))
	for i := range w {
		w[i] = make([]float64, len(centers))
	}
	for i := range centers {
		for j := i + 1; j < len(centers); j++ {
			v := line.Length(centers[i], centers[j]) * n.sampledCost(centers[i], centers[j])
			w[i][j] = v
			w[j][i] = v
		}
	}
	return w
}

// spanningTree runs Prim's algorithm from node 0 over a dense weight matrix,
// returning edges in the order they joined the tree. Ties go to the lowest
// index.
func spanningTree(w [][]float64) []edge {
	count := len(w)
	if count < 2 {
		return nil
	}

	inTree := make([]bool, count)
	best := make([]float64, count)
	parent := make([]int, count)
	for i := range best {
		best[i] = math.Inf(1)
		parent[i] = -1
	}
	best[0] = 0

	out := []edge{}
	for k := 0; k < count; k++ {
		u := -1
		for v := 0; v < count; v++ {
			if !inTree[v] && (u < 0 || best[v] < best[u]) {
				u = v
			}
		}
		inTree[u] = true
		if parent[u] >= 0 {
			out = append(out, edge{from: parent[u], to: u})
		}

		for v := 0; v < count; v++ {
			if !inTree[v] && w[u][v] < best[v] {
				best[v] = w[u][v]
				parent[v] = u
			}
		}
	}
	return out
}

// redundancy adds an extra road from each large settlement with too few
// spanning tree roads to its nearest settlement it isn't already joined to.
func (n *networkComposer) redundancy(settlements []*Settlement, tree []edge) []edge {
	if len(settlements) <= n.cfg.RedundancyMinSettlements {
		return nil
	}

	degree := make([]int, len(settlements))
	joined := mapset.New[[2]int]()
	for _, e := range tree {
		degree[e.from]++
		degree[e.to]++
		joined.Put(pairKey(e.from, e.to))
	}

	coords := make([]model2d.Coord, len(settlements))
	index := map[model2d.Coord]int{}
	for i, s := range settlements {
		coords[i] = model2d.Coord{X: float64(s.Center.X), Y: float64(s.Center.Y)}
		index[coords[i]] = i
	}
	tree2d := model2d.NewCoordTree(coords)

	out := []edge{}
	for i, s := range settlements {
		if s.Tier.Rank() < n.cfg.RedundancyTier.Rank() || degree[i] >= n.cfg.RedundancyMinLinks {
			continue
		}
		for _, c := range tree2d.KNN(len(coords), coords[i]) {
			j := index[c]
			if j == i || joined.Has(pairKey(i, j)) {
				continue
			}
			joined.Put(pairKey(i, j))
			out = append(out, edge{from: i, to: j, redundant: true})
			break
		}
	}
	return out
}

// compose routes every edge, returning the roads that could be built & the
// number that could not.
func (n *networkComposer) compose(settlements []*Settlement) ([]*Road, int) {
	centers := make([]image.Point, len(settlements))
	for i, s := range settlements {
		centers[i] = s.Center
	}

	tree := spanningTree(n.weights(centers))
	edges := append(tree, n.redundancy(settlements, tree)...)

	roads := []*Road{}
	omitted := 0
	for _, e := range edges {
		r, err := n.build(centers[e.from], centers[e.to])
		if err != nil {
			omitted++
			n.log.Info("road omitted", "from", settlements[e.from].Name, "to", settlements[e.to].Name, "err", err)
			continue
		}

		r.ID = len(roads)
		r.From = e.from
		r.To = e.to
		r.Redundant = e.redundant
		roads = append(roads, r)

		buffer := n.cfg.RoadBuffer
		if e.redundant {
			buffer = 0
		}
		n.roads.AddPath(r.Path, buffer)
	}

	return roads, omitted
}

// build routes & post-processes a single road
func (n *networkComposer) build(a, b image.Point) (*Road, error) {
	path, err := n.planner.Route(a, b, n.roads)
	if err != nil {
		return nil, err
	}

	path = route.StraightenBridges(path, n.costs, n.cfg.BridgeCost)
	path = route.Smooth(path, n.costs, n.cfg.Lookahead, n.cfg.SmoothMaxCost)

	r := &Road{Path: path}
	for _, p := range path {
		if n.t.IsRiver(p) || n.t.IsLake(p) {
			r.Bridge = true
			break
		}
	}
	return r, nil
}
