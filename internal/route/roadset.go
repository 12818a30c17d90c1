package route

import (
	"image"

	"github.com/boljen/go-bitmap"
)

// RoadSet records which cells already carry a road. Membership earns the
// RoadDiscount during search.
type RoadSet struct {
	width  int
	height int
	bm     bitmap.Bitmap
}

// NewRoadSet returns an empty set covering a width x height grid.
func NewRoadSet(width, height int) *RoadSet {
	return &RoadSet{width: width, height: height, bm: bitmap.New(width * height)}
}

func (r *RoadSet) inBounds(p image.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < r.width && p.Y < r.height
}

// Has returns if p is a road cell. Out of bounds cells never are.
func (r *RoadSet) Has(p image.Point) bool {
	if !r.inBounds(p) {
		return false
	}
	return r.bm.Get(p.Y*r.width + p.X)
}

// Add marks p as a road cell, out of bounds cells are ignored.
func (r *RoadSet) Add(p image.Point) {
	if !r.inBounds(p) {
		return
	}
	r.bm.Set(p.Y*r.width+p.X, true)
}

// AddPath marks every cell of path along with every cell within `buffer`
// (chebyshev) of it.
func (r *RoadSet) AddPath(path []image.Point, buffer int) {
	for _, p := range path {
		for dy := -buffer; dy <= buffer; dy++ {
			for dx := -buffer; dx <= buffer; dx++ {
				r.Add(p.Add(image.Pt(dx, dy)))
			}
		}
	}
}

// Clone returns an independent copy
func (r *RoadSet) Clone() *RoadSet {
	return &RoadSet{width: r.width, height: r.height, bm: bitmap.Bitmap(r.bm.Data(true))}
}

// Count returns the number of road cells
func (r *RoadSet) Count() int {
	n := 0
	for i := 0; i < r.width*r.height; i++ {
		if r.bm.Get(i) {
			n++
		}
	}
	return n
}
