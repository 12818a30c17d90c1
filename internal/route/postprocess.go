package route

import (
	"image"

	"github.com/voidshard/citynet/internal/field"
	"github.com/voidshard/citynet/internal/line"
)

// StraightenBridges replaces every run of water cells (cost >= waterCost)
// with a straight line between the land cells either side of it. Runs that
// touch either end of the path are left alone.
func StraightenBridges(path []image.Point, costs *field.Field[float64], waterCost float64) []image.Point {
	if len(path) < 3 {
		return path
	}

	isWater := func(p image.Point) bool { return costs.At(p) >= waterCost }

	out := []image.Point{path[0]}
	i := 1
	if isWater(path[0]) {
		for i < len(path) && isWater(path[i]) {
			out = append(out, path[i])
			i++
		}
	}

	for i < len(path) {
		if !isWater(path[i]) {
			out = append(out, path[i])
			i++
			continue
		}

		j := i
		for j < len(path) && isWater(path[j]) {
			j++
		}
		if j >= len(path) {
			out = append(out, path[i:]...)
			break
		}

		// line from the cell before the run to the cell after, we already
		// hold the former & the latter is appended next pass
		span := line.PointsBetween(path[i-1], path[j])
		out = append(out, span[1:len(span)-1]...)
		i = j
	}

	return out
}

// Smooth greedily skips ahead up to `lookahead` cells whenever the straight
// line to the skipped-to cell stays at or below maxCost, replacing the
// skipped stretch with that line.
func Smooth(path []image.Point, costs *field.Field[float64], lookahead int, maxCost float64) []image.Point {
	if len(path) < 3 {
		return path
	}

	canSkip := func(a, b image.Point) bool {
		for _, p := range line.PointsBetween(a, b) {
			if costs.At(p) > maxCost {
				return false
			}
		}
		return true
	}

	out := []image.Point{path[0]}
	for i := 0; i < len(path)-1; {
		farthest := i + 1
		end := i + lookahead + 1
		if end > len(path) {
			end = len(path)
		}
		for j := i + 2; j < end; j++ {
			if canSkip(path[i], path[j]) {
				farthest = j
			}
		}

		span := line.PointsBetween(path[i], path[farthest])
		out = append(out, span[1:]...)
		i = farthest
	}

	return out
}
