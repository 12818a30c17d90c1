package citynet

import (
	"image"
	"sort"

	"github.com/boljen/go-bitmap"
	"github.com/unixpickle/essentials"
)

var neighbours8 = [8]image.Point{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// cellSet is a set of cells of a terrain, backed by a bitmap
type cellSet struct {
	t  *Terrain
	bm bitmap.Bitmap
}

func newCellSet(t *Terrain) *cellSet {
	return &cellSet{t: t, bm: bitmap.New(t.Width * t.Height)}
}

// has returns if p is in the set, out of bounds cells never are
func (c *cellSet) has(p image.Point) bool {
	return c.t.InBounds(p) && c.bm.Get(c.t.index(p))
}

func (c *cellSet) add(p image.Point) {
	if c.t.InBounds(p) {
		c.bm.Set(c.t.index(p), true)
	}
}

// points returns every member in row-major order
func (c *cellSet) points() []image.Point {
	out := []image.Point{}
	for i := 0; i < c.t.Width*c.t.Height; i++ {
		if c.bm.Get(i) {
			out = append(out, image.Pt(i%c.t.Width, i/c.t.Width))
		}
	}
	return out
}

// fortify derives a wall ring around the given footprints & carves a gate
// into its north, south, east & west extremes. Returns nil walls if the
// settlement is too small to wall.
func fortify(t *Terrain, cfg *LayoutConfig, footprints []*Footprint) (walls, gates []image.Point) {
	occupied := newCellSet(t)
	count := 0
	for _, f := range footprints {
		for _, p := range f.Tiles() {
			if !occupied.has(p) {
				count++
			}
			occupied.add(p)
		}
	}
	if count < cfg.MinWallTiles {
		return nil, nil
	}

	// cells just outside the settlement
	boundary := newCellSet(t)
	for _, p := range occupied.points() {
		for _, o := range neighbours8 {
			n := p.Add(o)
			if !occupied.has(n) && !t.isWater(n) {
				boundary.add(n)
			}
		}
	}

	// thicken the boundary
	pad := cfg.WallPadding
	candidates := newCellSet(t)
	for _, p := range boundary.points() {
		for dy := 0; dy <= pad; dy++ {
			for dx := 0; dx <= pad; dx++ {
				n := p.Add(image.Pt(dx-pad/2, dy-pad/2))
				if !occupied.has(n) && !t.isWater(n) {
					candidates.add(n)
				}
			}
		}
	}

	// keep only the outermost layer
	for _, p := range candidates.points() {
		for _, o := range neighbours8 {
			n := p.Add(o)
			if !candidates.has(n) && !occupied.has(n) {
				walls = append(walls, p)
				break
			}
		}
	}
	if len(walls) == 0 {
		return nil, nil
	}

	return carveGates(walls)
}

// carveGates removes a 3 cell gate centred on the extreme wall cell in each
// cardinal direction. Where several cells share an extreme the middle one
// (in row-major order) is used, which keeps gates off corners.
// walls must be in row-major order.
func carveGates(walls []image.Point) ([]image.Point, []image.Point) {
	minY, maxY, minX, maxX := walls[0].Y, walls[0].Y, walls[0].X, walls[0].X
	for _, p := range walls[1:] {
		minY = minint(minY, p.Y)
		maxY = maxint(maxY, p.Y)
		minX = minint(minX, p.X)
		maxX = maxint(maxX, p.X)
	}

	middle := func(match func(p image.Point) bool) image.Point {
		ties := []image.Point{}
		for _, p := range walls {
			if match(p) {
				ties = append(ties, p)
			}
		}
		return ties[len(ties)/2]
	}

	horizontal := image.Pt(1, 0)
	vertical := image.Pt(0, 1)
	centres := []struct {
		at   image.Point
		axis image.Point
	}{
		{middle(func(p image.Point) bool { return p.Y == minY }), horizontal}, // north
		{middle(func(p image.Point) bool { return p.Y == maxY }), horizontal}, // south
		{middle(func(p image.Point) bool { return p.X == maxX }), vertical},   // east
		{middle(func(p image.Point) bool { return p.X == minX }), vertical},   // west
	}

	gates := []image.Point{}
	for _, c := range centres {
		for k := -1; k <= 1; k++ {
			g := c.at.Add(c.axis.Mul(k))
			for i, w := range walls {
				if w == g {
					essentials.UnorderedDelete(&walls, i)
					gates = append(gates, g)
					break
				}
			}
		}
	}

	sortRowMajor(walls)
	sortRowMajor(gates)
	return walls, gates
}

// sortRowMajor sorts points by y then x
func sortRowMajor(in []image.Point) {
	sort.Slice(in, func(a, b int) bool {
		if in[a].Y != in[b].Y {
			return in[a].Y < in[b].Y
		}
		return in[a].X < in[b].X
	})
}
