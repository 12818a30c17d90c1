package line

import (
	"image/color"
)

// Plotter interface for bresenham
type Plotter interface {
	Set(x int, y int, c color.Color)
}

// bresenham plots every cell on the line x1,y1 -> x2,y2 in travel order.
// Unlike the usual half-octant variants we never swap the endpoints, so the
// first cell plotted is always (x1,y1) and the last is always (x2,y2).
func bresenham(p Plotter, x1, y1, x2, y2 int, col color.Color) {
	dx, dy := x2-x1, y2-y1

	sx, sy := 1, 1
	if dx < 0 {
		dx, sx = -dx, -1
	}
	if dy < 0 {
		dy, sy = -dy, -1
	}

	e := dx - dy
	for {
		p.Set(x1, y1, col)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x1 += sx
		}
		if e2 < dx {
			e += dx
			y1 += sy
		}
	}
}
