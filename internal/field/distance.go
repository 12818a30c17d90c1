package field

import (
	"image"
)

var (
	// 4-connected neighbours
	cardinal = [4]image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	// 8-connected neighbours
	compass = [8]image.Point{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
)

// Distance is a multi source 4-connected breadth first distance transform.
// Every cell for which seed returns true is at distance 0. Cells are never
// expanded once their distance reaches max, anything not reached is left at
// max+1.
func Distance(width, height int, seed func(p image.Point) bool, max int) *Field[int] {
	f := New(width, height, max+1)

	queue := []int{}
	for i := range f.Data {
		if seed(f.Point(i)) {
			f.Data[i] = 0
			queue = append(queue, i)
		}
	}

	for head := 0; head < len(queue); head++ {
		i := queue[head]
		d := f.Data[i]
		if d >= max {
			continue
		}
		p := f.Point(i)
		for _, o := range cardinal {
			n := p.Add(o)
			if !f.InBounds(n) {
				continue
			}
			j := f.Index(n)
			if f.Data[j] <= d+1 {
				continue
			}
			f.Data[j] = d + 1
			queue = append(queue, j)
		}
	}

	return f
}

// ChamferDiagonal is the cost of a diagonal step in Chamfer
const ChamferDiagonal = 1.414

// Chamfer is an 8-connected distance transform where straight steps cost 1 &
// diagonal steps cost ChamferDiagonal. Cells with seed true start at 0, cells that are
// not passable are never entered (but may still be seeds), cells further
// than max are not expanded & unreached cells keep fill.
func Chamfer(width, height int, seed, passable func(p image.Point) bool, max, fill float64) *Field[float64] {
	f := New(width, height, fill)

	queue := []int{}
	for i := range f.Data {
		if seed(f.Point(i)) {
			f.Data[i] = 0
			queue = append(queue, i)
		}
	}

	// cells may be re-queued when a shorter diagonal route shows up later,
	// the max cut off bounds how often that can happen
	for head := 0; head < len(queue); head++ {
		i := queue[head]
		d := f.Data[i]
		if d > max {
			continue
		}
		p := f.Point(i)
		for _, o := range compass {
			n := p.Add(o)
			if !f.InBounds(n) || !passable(n) {
				continue
			}
			step := 1.0
			if o.X != 0 && o.Y != 0 {
				step = ChamferDiagonal
			}
			j := f.Index(n)
			if f.Data[j] <= d+step {
				continue
			}
			f.Data[j] = d + step
			queue = append(queue, j)
		}
	}

	return f
}
