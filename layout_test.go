package citynet

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/citynet/internal/prng"
)

func TestLayoutBuild(t *testing.T) {
	tr := flatTerrain(128, 128, 0.5, Grassland)
	cfg := &DefaultConfig().Layout
	center := image.Pt(64, 64)

	for _, seed := range []uint64{1, 2, 3, 42} {
		fps := newLayoutBuilder(tr, cfg, center, 25, prng.New(seed)).build(30)

		require.NotEmpty(t, fps)
		assert.LessOrEqual(t, len(fps), 30)

		central := fps[0]
		assert.Equal(t, Civic, central.Use)
		assert.Equal(t, Rectangle, central.Shape.Kind)
		assert.True(t, center.In(central.Bounds()))
		assert.GreaterOrEqual(t, central.Width, cfg.CentralMin)
		assert.LessOrEqual(t, central.Width, cfg.CentralMax)
		assert.GreaterOrEqual(t, central.Height, cfg.CentralMin)
		assert.LessOrEqual(t, central.Height, cfg.CentralMax)

		for i, a := range fps {
			for _, p := range a.Tiles() {
				assert.True(t, p.X >= cfg.Margin && p.Y >= cfg.Margin)
				assert.True(t, p.X < tr.Width-cfg.Margin && p.Y < tr.Height-cfg.Margin)
			}

			for _, b := range fps[i+1:] {
				assert.Greater(t, footprintGap(a, b), cfg.StreetWidth, "%v %v", a.Bounds(), b.Bounds())
			}
		}
	}
}

func TestLayoutCentralExtentsRolledIndependently(t *testing.T) {
	tr := flatTerrain(128, 128, 0.5, Grassland)
	cfg := &DefaultConfig().Layout

	rectangular := false
	for seed := uint64(0); seed < 64 && !rectangular; seed++ {
		fps := newLayoutBuilder(tr, cfg, image.Pt(64, 64), 25, prng.New(seed)).build(1)
		require.NotEmpty(t, fps)
		rectangular = fps[0].Width != fps[0].Height
	}
	assert.True(t, rectangular, "central footprint is always square")
}

func TestLayoutDeterministic(t *testing.T) {
	tr := flatTerrain(128, 128, 0.5, Grassland)
	cfg := &DefaultConfig().Layout

	a := newLayoutBuilder(tr, cfg, image.Pt(64, 64), 40, prng.New(5)).build(60)
	b := newLayoutBuilder(tr, cfg, image.Pt(64, 64), 40, prng.New(5)).build(60)
	assert.Equal(t, a, b)
}

func TestLayoutAvoidsWater(t *testing.T) {
	tr := riverTerrain()
	cfg := &DefaultConfig().Layout

	fps := newLayoutBuilder(tr, cfg, image.Pt(26, 30), 15, prng.New(3)).build(15)
	require.NotEmpty(t, fps)

	for _, f := range fps {
		for _, p := range f.Tiles() {
			assert.False(t, tr.IsRiver(p), "%v on river", p)
		}
	}
}

func TestLayoutNoRoomForCentre(t *testing.T) {
	// centre sits on the river
	fps := newLayoutBuilder(riverTerrain(), &DefaultConfig().Layout, image.Pt(32, 30), 15, prng.New(3)).build(10)
	assert.Empty(t, fps)
}

// footprintGap is the smallest chebyshev distance between tiles of a & b
func footprintGap(a, b *Footprint) int {
	best := -1
	for _, p := range a.Tiles() {
		for _, q := range b.Tiles() {
			d := chebyshevDist(p, q)
			if best < 0 || d < best {
				best = d
			}
		}
	}
	return best
}
