package territory

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterTwoSites(t *testing.T) {
	sites := []image.Point{{10, 10}, {30, 10}}
	owners := Raster(40, 20, Cells(40, 20, sites))

	assert.Equal(t, 0, owners.At(image.Pt(0, 0)))
	assert.Equal(t, 0, owners.At(image.Pt(19, 19)))
	assert.Equal(t, 0, owners.At(image.Pt(20, 5))) // border goes to the lower index
	assert.Equal(t, 1, owners.At(image.Pt(21, 5)))
	assert.Equal(t, 1, owners.At(image.Pt(39, 19)))

	for _, v := range owners.Data {
		assert.True(t, v == 0 || v == 1)
	}
}

func TestRasterMatchesNearest(t *testing.T) {
	sites := []image.Point{{5, 5}, {50, 8}, {25, 40}, {60, 60}, {10, 55}}
	cells := Cells(64, 64, sites)
	owners := Raster(64, 64, cells)

	for i, v := range owners.Data {
		p := owners.Point(i)
		want := nearest(p, cells)
		if v != want {
			// only a tie may differ from the nearest centre
			a, b := sites[v].Sub(p), sites[want].Sub(p)
			assert.Equal(t, a.X*a.X+a.Y*a.Y, b.X*b.X+b.Y*b.Y, "%v", p)
		}
	}
}

func TestRasterEmpty(t *testing.T) {
	owners := Raster(8, 8, nil)
	for _, v := range owners.Data {
		assert.Equal(t, -1, v)
	}
}

func TestRasterSingleSite(t *testing.T) {
	owners := Raster(8, 8, Cells(8, 8, []image.Point{{3, 3}}))
	for _, v := range owners.Data {
		assert.Equal(t, 0, v)
	}
}

func TestOutline(t *testing.T) {
	cells := Cells(40, 20, []image.Point{{10, 10}, {30, 10}})
	require.Len(t, cells, 2)

	left := cells[0].Outline()
	assert.ElementsMatch(t, []image.Point{{0, 0}, {20, 0}, {20, 20}, {0, 20}}, left)

	right := cells[1].Outline()
	assert.ElementsMatch(t, []image.Point{{20, 0}, {40, 0}, {40, 20}, {20, 20}}, right)

	assert.True(t, cells[0].Contains(image.Pt(20, 10)))
	assert.True(t, cells[1].Contains(image.Pt(20, 10)))
	assert.False(t, cells[0].Contains(image.Pt(21, 10)))
}

func TestNeighbours(t *testing.T) {
	sites := []image.Point{{5, 5}, {15, 5}, {25, 5}}
	owners := Raster(30, 10, Cells(30, 10, sites))

	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, Neighbours(owners))
}
