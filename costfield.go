package citynet

import (
	"image"
	"math"

	"github.com/voidshard/citynet/internal/field"
)

var neighbours4 = [4]image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// biomeCost returns the base movement cost of a (land) biome.
// Biomes without their own table entry are scaled from a related one.
func (c *CostTable) biomeCost(b Biome) float64 {
	switch b {
	case DeepOcean, Ocean:
		return c.DeepWater
	case ShallowWater, Lake, River:
		return c.ShallowWater
	case Beach:
		return c.Beach
	case Grassland:
		return c.Plain
	case Savanna:
		return c.Plain * 1.5
	case Forest:
		return c.Forest
	case Rainforest:
		return c.Forest * 1.5
	case Taiga:
		return c.Forest * 1.2
	case Desert:
		return c.Desert
	case Tundra:
		return c.Snow * 0.7
	case Snow:
		return c.Snow
	case Mountain:
		return c.Mountain
	case SnowyMountain:
		return c.Mountain * 1.5
	case Marsh:
		return c.Marsh
	}
	return c.Plain
}

// buildCostField turns terrain into a per cell movement cost. Water has a
// fixed cost; land cost is the biome cost plus elevation & slope penalties.
// The existing road discount is applied by the planner, not here.
func buildCostField(t *Terrain, c *CostTable) *field.Field[float64] {
	f := field.New(t.Width, t.Height, 0.0)

	for i := range f.Data {
		p := f.Point(i)
		f.Data[i] = c.costAt(t, p)
	}

	return f
}

// costAt computes the cost of a single cell
func (c *CostTable) costAt(t *Terrain, p image.Point) float64 {
	switch {
	case t.IsRiver(p):
		return c.River
	case t.IsLake(p):
		return c.ShallowWater
	case t.IsSea(p):
		if t.SeaLevel-t.HeightAt(p) > c.DeepWaterDepth {
			return c.DeepWater
		}
		return c.ShallowWater
	}

	h := t.HeightAt(p)
	cost := c.biomeCost(t.BiomeAt(p))

	if h > c.HighElevation {
		cost += (h - c.HighElevation) * c.HighElevationPenalty
	} else if h > c.MidElevation {
		cost += (h - c.MidElevation) * c.MidElevationPenalty
	}

	slope := 0.0
	for _, o := range neighbours4 {
		n := p.Add(o)
		if !t.InBounds(n) {
			continue
		}
		slope = math.Max(slope, math.Abs(t.HeightAt(n)-h))
	}
	cost += slope * c.SlopeWeight

	return math.Max(cost, 0)
}
