package citynet

import (
	"image"
	"io"
	"log/slog"
	"math"
)

// flatTerrain returns a w x h map at a single height & biome
func flatTerrain(w, h int, height float64, biome Biome) *Terrain {
	t := &Terrain{
		Width:    w,
		Height:   h,
		Heights:  make([]float64, w*h),
		Biomes:   make([]Biome, w*h),
		River:    make([]float64, w*h),
		Lake:     make([]float64, w*h),
		SeaLevel: 0.3,
	}
	for i := range t.Heights {
		t.Heights[i] = height
		t.Biomes[i] = biome
	}
	return t
}

// riverTerrain is 64x64 flat grassland with a river down x=32
func riverTerrain() *Terrain {
	t := flatTerrain(64, 64, 0.5, Grassland)
	for y := 0; y < t.Height; y++ {
		t.River[t.index(image.Pt(32, y))] = 1
	}
	return t
}

// islandTerrain is 32x32 of sea with a single 5x5 island of grassland
func islandTerrain() *Terrain {
	t := flatTerrain(32, 32, 0.1, Ocean)
	for y := 14; y <= 18; y++ {
		for x := 14; x <= 18; x++ {
			i := t.index(image.Pt(x, y))
			t.Heights[i] = 0.5
			t.Biomes[i] = Grassland
		}
	}
	return t
}

// rollingTerrain is a larger map with sea to the west, gentle hills &
// a meandering river.
func rollingTerrain() *Terrain {
	t := flatTerrain(256, 256, 0.5, Grassland)
	for y := 0; y < t.Height; y++ {
		riverX := 150 + int(6*math.Sin(float64(y)/20))
		for x := 0; x < t.Width; x++ {
			i := t.index(image.Pt(x, y))
			h := 0.48 + 0.08*math.Sin(float64(x)/17)*math.Cos(float64(y)/23)
			switch {
			case x < 24:
				h = 0.1
				t.Biomes[i] = Ocean
			case h > 0.53:
				t.Biomes[i] = Forest
			}
			if x == riverX || x == riverX+1 {
				t.River[i] = 1
				t.Biomes[i] = River
			}
			t.Heights[i] = h
		}
	}
	return t
}

// quietConfig is DefaultConfig with logging discarded
func quietConfig() *Config {
	cfg := DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return cfg
}

func chebyshevDist(a, b image.Point) int {
	return maxint(absint(a.X-b.X), absint(a.Y-b.Y))
}

func absint(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
