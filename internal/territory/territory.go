package territory

import (
	"image"
	"math"
	"sort"

	"github.com/unixpickle/model3d/model2d"
	"github.com/zyedidia/generic/mapset"

	"github.com/voidshard/citynet/internal/field"
)

const epsilon = 1e-8

// Cell is the part of the map closer to one site than to any other.
type Cell struct {
	Site   int
	Center model2d.Coord

	poly model2d.ConvexPolytope
}

// Cells computes the voronoi cell of every site, clipped to a w x h map.
// Sites must be distinct.
func Cells(w, h int, sites []image.Point) []*Cell {
	coords := make([]model2d.Coord, len(sites))
	for i, s := range sites {
		coords[i] = model2d.Coord{X: float64(s.X), Y: float64(s.Y)}
	}

	min := model2d.Coord{}
	max := model2d.Coord{X: float64(w), Y: float64(h)}

	cells := make([]*Cell, len(coords))
	for i, c := range coords {
		constraints := model2d.NewConvexPolytopeRect(min, max)
		for j, c1 := range coords {
			if i == j {
				continue
			}
			mp := c.Mid(c1)
			normal := c1.Sub(c).Normalize()
			constraints = append(constraints, &model2d.LinearConstraint{
				Normal: normal,
				Max:    normal.Dot(mp),
			})
		}
		cells[i] = &Cell{Site: i, Center: c, poly: constraints}
	}
	return cells
}

// Contains returns if p falls in the cell, borders included
func (c *Cell) Contains(p image.Point) bool {
	pc := model2d.Coord{X: float64(p.X), Y: float64(p.Y)}
	for _, l := range c.poly {
		if l.Normal.Dot(pc) > l.Max+epsilon {
			return false
		}
	}
	return true
}

// Outline returns the corners of the cell rounded to the grid, in order
// around the centre.
func (c *Cell) Outline() []image.Point {
	seen := map[image.Point]bool{}
	out := []image.Point{}
	for _, seg := range c.poly.Mesh().SegmentSlice() {
		for _, v := range seg {
			p := image.Pt(int(math.Round(v.X)), int(math.Round(v.Y)))
			if seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}

	angle := func(p image.Point) float64 {
		return math.Atan2(float64(p.Y)-c.Center.Y, float64(p.X)-c.Center.X)
	}
	sort.Slice(out, func(a, b int) bool {
		aa, ab := angle(out[a]), angle(out[b])
		if aa != ab {
			return aa < ab
		}
		if out[a].Y != out[b].Y {
			return out[a].Y < out[b].Y
		}
		return out[a].X < out[b].X
	})
	return out
}

// bounds returns the grid rectangle holding the cell, clipped to w x h
func (c *Cell) bounds(w, h int) image.Rectangle {
	m := c.poly.Mesh()
	lo, hi := m.Min(), m.Max()
	r := image.Rect(
		int(math.Floor(lo.X)), int(math.Floor(lo.Y)),
		int(math.Ceil(hi.X))+1, int(math.Ceil(hi.Y))+1,
	)
	return r.Intersect(image.Rect(0, 0, w, h))
}

// Raster returns the index of the owning cell of every point of a w x h
// map. Points on a border go to the lowest index. With no cells every
// point holds -1.
func Raster(w, h int, cells []*Cell) *field.Field[int] {
	f := field.New(w, h, -1)
	if len(cells) == 0 {
		return f
	}

	for _, c := range cells {
		r := c.bounds(w, h)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				p := image.Pt(x, y)
				if f.At(p) < 0 && c.Contains(p) {
					f.Set(p, c.Site)
				}
			}
		}
	}

	// rounding can leave the odd point on a border unclaimed
	for i, v := range f.Data {
		if v < 0 {
			f.Data[i] = nearest(f.Point(i), cells)
		}
	}

	return f
}

// nearest returns the site of the closest cell centre, lowest index on ties
func nearest(p image.Point, cells []*Cell) int {
	pc := model2d.Coord{X: float64(p.X), Y: float64(p.Y)}
	sqdist := func(c model2d.Coord) float64 {
		d := pc.Sub(c)
		return d.Dot(d)
	}

	best := cells[0].Site
	bestDist := sqdist(cells[0].Center)
	for _, c := range cells[1:] {
		d := sqdist(c.Center)
		if d < bestDist {
			best, bestDist = c.Site, d
		}
	}
	return best
}

// Neighbours returns every pair of sites whose cells touch on the raster,
// lowest first & sorted.
func Neighbours(owners *field.Field[int]) [][2]int {
	pairs := mapset.New[[2]int]()
	for i, v := range owners.Data {
		p := owners.Point(i)
		for _, o := range [2]image.Point{{1, 0}, {0, 1}} {
			n := p.Add(o)
			if !owners.InBounds(n) {
				continue
			}
			u := owners.At(n)
			if u == v || u < 0 || v < 0 {
				continue
			}
			if u < v {
				pairs.Put([2]int{u, v})
			} else {
				pairs.Put([2]int{v, u})
			}
		}
	}

	out := make([][2]int, 0, pairs.Size())
	pairs.Each(func(k [2]int) {
		out = append(out, k)
	})
	sort.Slice(out, func(a, b int) bool {
		if out[a][0] != out[b][0] {
			return out[a][0] < out[b][0]
		}
		return out[a][1] < out[b][1]
	})
	return out
}
