package citynet

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCostAt(t *testing.T) {
	costs := &DefaultConfig().Costs

	cases := []struct {
		name string
		tr   func() *Terrain
		want float64
	}{
		{
			"flat grassland",
			func() *Terrain { return flatTerrain(8, 8, 0.5, Grassland) },
			1,
		},
		{
			"river",
			func() *Terrain {
				tr := flatTerrain(8, 8, 0.5, Grassland)
				tr.River[tr.index(image.Pt(4, 4))] = 1
				return tr
			},
			300,
		},
		{
			"lake",
			func() *Terrain {
				tr := flatTerrain(8, 8, 0.5, Grassland)
				tr.Lake[tr.index(image.Pt(4, 4))] = 0.9
				return tr
			},
			500,
		},
		{
			"weak lake mask is land",
			func() *Terrain {
				tr := flatTerrain(8, 8, 0.5, Grassland)
				tr.Lake[tr.index(image.Pt(4, 4))] = 0.4
				return tr
			},
			1,
		},
		{
			"deep sea",
			func() *Terrain { return flatTerrain(8, 8, 0.1, Ocean) },
			10000,
		},
		{
			"shallow sea",
			func() *Terrain { return flatTerrain(8, 8, 0.2, Ocean) },
			500,
		},
		{
			"high elevation",
			func() *Terrain { return flatTerrain(8, 8, 0.8, Grassland) },
			13,
		},
		{
			"mid elevation",
			func() *Terrain { return flatTerrain(8, 8, 0.6, Grassland) },
			1.75,
		},
		{
			"forest",
			func() *Terrain { return flatTerrain(8, 8, 0.5, Forest) },
			8,
		},
		{
			"slope",
			func() *Terrain {
				tr := flatTerrain(8, 8, 0.5, Grassland)
				tr.Heights[tr.index(image.Pt(5, 4))] = 0.6
				return tr
			},
			3,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, costs.costAt(tt.tr(), image.Pt(4, 4)), 1e-9)
		})
	}
}

func TestBuildCostField(t *testing.T) {
	tr := riverTerrain()
	f := buildCostField(tr, &DefaultConfig().Costs)

	assert.Equal(t, tr.Width, f.Width)
	assert.Equal(t, tr.Height, f.Height)
	assert.Equal(t, 300.0, f.At(image.Pt(32, 10)))
	assert.Equal(t, 1.0, f.At(image.Pt(10, 10)))
}
