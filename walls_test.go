package citynet

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFortifySquare(t *testing.T) {
	tr := flatTerrain(60, 60, 0.5, Grassland)
	fps := []*Footprint{
		{Origin: image.Pt(20, 20), Width: 6, Height: 6, Shape: Shape{Kind: Rectangle}, Use: Civic},
	}

	walls, gates := fortify(tr, &DefaultConfig().Layout, fps)

	assert.Len(t, walls, 24)
	assert.Equal(t, []image.Point{
		{22, 18}, {23, 18}, {24, 18},
		{18, 22}, {27, 22},
		{18, 23}, {27, 23},
		{18, 24}, {27, 24},
		{22, 27}, {23, 27}, {24, 27},
	}, gates)

	occupied := map[image.Point]bool{}
	for _, p := range fps[0].Tiles() {
		occupied[p] = true
	}
	seen := map[image.Point]bool{}
	for _, p := range walls {
		assert.False(t, occupied[p], "wall %v on a building", p)
		seen[p] = true
	}
	for _, p := range gates {
		assert.False(t, occupied[p], "gate %v on a building", p)
		assert.False(t, seen[p], "gate %v is also a wall", p)
	}

	// row-major
	for i := 1; i < len(walls); i++ {
		a, b := walls[i-1], walls[i]
		assert.True(t, a.Y < b.Y || (a.Y == b.Y && a.X < b.X))
	}
}

func TestFortifyTooSmall(t *testing.T) {
	tr := flatTerrain(60, 60, 0.5, Grassland)
	fps := []*Footprint{
		{Origin: image.Pt(20, 20), Width: 3, Height: 3, Shape: Shape{Kind: Rectangle}},
	}

	walls, gates := fortify(tr, &DefaultConfig().Layout, fps)
	assert.Nil(t, walls)
	assert.Nil(t, gates)
}

func TestFortifySkipsWater(t *testing.T) {
	tr := riverTerrain()
	fps := []*Footprint{
		{Origin: image.Pt(26, 20), Width: 5, Height: 5, Shape: Shape{Kind: Rectangle}},
	}

	walls, gates := fortify(tr, &DefaultConfig().Layout, fps)
	require.NotEmpty(t, walls)
	for _, p := range append(walls, gates...) {
		assert.False(t, tr.IsRiver(p), "%v on river", p)
	}
}
