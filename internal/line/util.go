package line

import (
	"image"
	"image/color"

	"github.com/golang/geo/r2"
)

// listPlot meets the Plotter interface,
// In our case we just append the x,y to a list,
type listPlot struct {
	pts []image.Point
}

// Set records a new point on the line
func (l *listPlot) Set(x, y int, c color.Color) {
	l.pts = append(l.pts, image.Pt(x, y))
}

// PointsBetween returns all points on a line between a,b (inclusive).
// Points are ordered from a to b.
func PointsBetween(a, b image.Point) []image.Point {
	lp := &listPlot{pts: []image.Point{}}
	bresenham(lp, a.X, a.Y, b.X, b.Y, color.Black)
	return lp.pts
}

// Lerp returns the cell at fraction t along the straight line a -> b.
// Co-ords are truncated rather than rounded.
func Lerp(a, b image.Point, t float64) image.Point {
	pa := r2.Point{X: float64(a.X), Y: float64(a.Y)}
	pb := r2.Point{X: float64(b.X), Y: float64(b.Y)}
	v := pa.Add(pb.Sub(pa).Mul(t))
	return image.Pt(int(v.X), int(v.Y))
}

// Sample returns n cells evenly spaced along a -> b, starting at a.
// The final sample falls short of b unless n is 1 and a == b.
func Sample(a, b image.Point, n int) []image.Point {
	if n <= 0 {
		return nil
	}
	out := make([]image.Point, n)
	for i := 0; i < n; i++ {
		out[i] = Lerp(a, b, float64(i)/float64(n))
	}
	return out
}

// Length returns the euclidean distance between a & b.
func Length(a, b image.Point) float64 {
	pa := r2.Point{X: float64(a.X), Y: float64(a.Y)}
	pb := r2.Point{X: float64(b.X), Y: float64(b.Y)}
	return pb.Sub(pa).Norm()
}
