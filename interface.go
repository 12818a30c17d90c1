package citynet

import (
	"image"

	"github.com/pkg/errors"
)

// Biome is the terrain classification of a cell, as produced by whatever
// generated the terrain.
type Biome uint8

const (
	DeepOcean Biome = iota
	Ocean
	ShallowWater
	Beach
	Desert
	Savanna
	Grassland
	Forest
	Rainforest
	Taiga
	Tundra
	Snow
	Mountain
	SnowyMountain
	Marsh
	River
	Lake
)

// IsWater returns if the biome is some kind of water
func (b Biome) IsWater() bool {
	switch b {
	case DeepOcean, Ocean, ShallowWater, River, Lake:
		return true
	}
	return false
}

// IsMountain returns if the biome is mountainous
func (b Biome) IsMountain() bool {
	return b == Mountain || b == SnowyMountain
}

// maskThreshold is the strength at which a river / lake mask value counts
const maskThreshold = 0.5

// Terrain tells citynet what is at each cell of the map. All slices are
// row-major & width*height long. River & Lake may be nil if the map has none.
type Terrain struct {
	Width  int
	Height int

	// Heights are normalised 0-1
	Heights []float64

	Biomes []Biome

	// River & lake indicator strength per cell, treated as set above 0.5
	River []float64
	Lake  []float64

	// cells with height below SeaLevel are sea
	SeaLevel float64
}

// Validate checks the terrain is internally consistent
func (t *Terrain) Validate() error {
	if t == nil {
		return errors.Wrap(ErrInvalidTerrain, "terrain is nil")
	}
	if t.Width <= 0 || t.Height <= 0 {
		return errors.Wrapf(ErrInvalidTerrain, "size %dx%d", t.Width, t.Height)
	}
	n := t.Width * t.Height
	if len(t.Heights) != n {
		return errors.Wrapf(ErrInvalidTerrain, "expected %d heights, got %d", n, len(t.Heights))
	}
	if len(t.Biomes) != n {
		return errors.Wrapf(ErrInvalidTerrain, "expected %d biomes, got %d", n, len(t.Biomes))
	}
	if t.River != nil && len(t.River) != n {
		return errors.Wrapf(ErrInvalidTerrain, "expected %d river values, got %d", n, len(t.River))
	}
	if t.Lake != nil && len(t.Lake) != n {
		return errors.Wrapf(ErrInvalidTerrain, "expected %d lake values, got %d", n, len(t.Lake))
	}
	return nil
}

// Bounds of the terrain
func (t *Terrain) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.Width, t.Height)
}

// InBounds returns if p is on the map
func (t *Terrain) InBounds(p image.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < t.Width && p.Y < t.Height
}

func (t *Terrain) index(p image.Point) int {
	return p.Y*t.Width + p.X
}

// HeightAt p
func (t *Terrain) HeightAt(p image.Point) float64 {
	return t.Heights[t.index(p)]
}

// BiomeAt p
func (t *Terrain) BiomeAt(p image.Point) Biome {
	return t.Biomes[t.index(p)]
}

// IsRiver returns if the river mask is set at p
func (t *Terrain) IsRiver(p image.Point) bool {
	return t.River != nil && t.River[t.index(p)] > maskThreshold
}

// IsLake returns if the lake mask is set at p
func (t *Terrain) IsLake(p image.Point) bool {
	return t.Lake != nil && t.Lake[t.index(p)] > maskThreshold
}

// IsSea returns if p is below sea level
func (t *Terrain) IsSea(p image.Point) bool {
	return t.HeightAt(p) < t.SeaLevel
}

// isWater is true for anything off the map, below sea level or on a
// river / lake. Walls & buildings never go on such cells.
func (t *Terrain) isWater(p image.Point) bool {
	if !t.InBounds(p) {
		return true
	}
	return t.IsSea(p) || t.IsRiver(p) || t.IsLake(p)
}

// CanBuildOn returns if a building may stand on p, given the highest
// height considered buildable.
func (t *Terrain) CanBuildOn(p image.Point, maxHeight float64) bool {
	if t.isWater(p) {
		return false
	}
	return t.HeightAt(p) <= maxHeight
}
