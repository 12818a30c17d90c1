package route

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStraightenBridges(t *testing.T) {
	costs := uniform(10, 10)
	costs.Set(image.Pt(2, 1), 300)
	costs.Set(image.Pt(3, 1), 300)

	path := []image.Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 0}, {5, 0}}
	got := StraightenBridges(path, costs, 200)
	assert.Equal(t, []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}}, got)
}

func TestStraightenBridgesKeepsOpenRuns(t *testing.T) {
	costs := uniform(10, 10)
	costs.Set(image.Pt(0, 0), 300)
	costs.Set(image.Pt(1, 1), 300)
	costs.Set(image.Pt(4, 3), 300)

	path := []image.Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 3}}
	assert.Equal(t, path, StraightenBridges(path, costs, 200))
}

func TestSmoothStraightensZigZag(t *testing.T) {
	costs := uniform(10, 10)
	path := []image.Point{{0, 0}, {1, 1}, {2, 0}, {3, 1}, {4, 0}}

	got := Smooth(path, costs, 9, 100)
	assert.Equal(t, []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}, got)
}

func TestSmoothAvoidsExpensiveCells(t *testing.T) {
	costs := uniform(10, 10)
	for x := 1; x <= 3; x++ {
		costs.Set(image.Pt(x, 0), 500)
	}
	path := []image.Point{{0, 0}, {1, 1}, {2, 1}, {3, 1}, {4, 0}}

	got := Smooth(path, costs, 9, 100)
	assert.Equal(t, path[0], got[0])
	assert.Equal(t, path[len(path)-1], got[len(got)-1])
	requireConnected(t, got)
	for _, p := range got[1 : len(got)-1] {
		assert.LessOrEqual(t, costs.At(p), 100.0, "%v", p)
	}
}

func TestSmoothLookaheadWindow(t *testing.T) {
	costs := uniform(30, 30)
	path := []image.Point{}
	for x := 0; x < 25; x++ {
		path = append(path, image.Pt(x, x%2))
	}

	got := Smooth(path, costs, 9, 100)
	assert.Equal(t, path[0], got[0])
	assert.Equal(t, path[len(path)-1], got[len(got)-1])
	requireConnected(t, got)
}

func TestRoadSet(t *testing.T) {
	r := NewRoadSet(10, 10)
	r.AddPath([]image.Point{{0, 0}, {5, 5}}, 1)

	assert.True(t, r.Has(image.Pt(0, 0)))
	assert.True(t, r.Has(image.Pt(1, 1)))
	assert.True(t, r.Has(image.Pt(6, 4)))
	assert.False(t, r.Has(image.Pt(2, 2)))
	assert.False(t, r.Has(image.Pt(-1, 0)))
	assert.Equal(t, 4+9, r.Count())

	c := r.Clone()
	c.Add(image.Pt(9, 9))
	assert.True(t, c.Has(image.Pt(9, 9)))
	assert.False(t, r.Has(image.Pt(9, 9)))
}
