package citynet

import (
	"image"
	"math"
	"math/rand"
	"sort"

	"github.com/voidshard/citynet/internal/field"
)

// biomeBonus is added to the score of a site on the given biome
var biomeBonus = map[Biome]float64{
	Grassland:     0.15,
	Forest:        0.15,
	Savanna:       0.1,
	Beach:         0.08,
	Tundra:        -0.1,
	Taiga:         -0.1,
	Desert:        -0.12,
	Mountain:      -0.5,
	SnowyMountain: -0.5,
}

// candidate is a scored possible settlement site
type candidate struct {
	p     image.Point
	score float64
}

// siteSelector scores cells of a terrain as settlement sites.
type siteSelector struct {
	t      *Terrain
	params *Params
	cfg    *SiteConfig
	layout *LayoutConfig

	river *field.Field[int] // distance to the nearest river cell
	coast *field.Field[int] // distance to the nearest sea cell
}

// newSiteSelector computes the distance fields needed for scoring
func newSiteSelector(t *Terrain, cfg *Config) *siteSelector {
	s := &siteSelector{t: t, params: &cfg.Params, cfg: &cfg.Sites, layout: &cfg.Layout}
	s.river = field.Distance(t.Width, t.Height, t.IsRiver, cfg.Sites.RiverMaxDistance)
	s.coast = field.Distance(t.Width, t.Height, t.IsSea, cfg.Sites.CoastMaxDistance)
	return s
}

// stride of the coarse sampling grid
func (s *siteSelector) stride() int {
	return maxint(8, minint(s.t.Width, s.t.Height)/64)
}

// candidates returns every sampled cell scoring above the minimum, in scan
// order (row by row).
func (s *siteSelector) candidates() []*candidate {
	step := s.stride()
	out := []*candidate{}
	for y := step; y < s.t.Height-step; y += step {
		for x := step; x < s.t.Width-step; x += step {
			p := image.Pt(x, y)
			if !s.eligible(p) {
				continue
			}
			score := s.score(p)
			if score > s.cfg.MinScore {
				out = append(out, &candidate{p: p, score: score})
			}
		}
	}
	return out
}

// eligible returns if p is land, not mountain, low enough & has room for at
// least a central footprint & its street.
func (s *siteSelector) eligible(p image.Point) bool {
	t := s.t
	if t.isWater(p) || t.BiomeAt(p).IsWater() || t.BiomeAt(p).IsMountain() {
		return false
	}
	if t.HeightAt(p) > s.cfg.MaxElevation {
		return false
	}

	c := s.cfg.Clearance
	for dy := -c; dy <= c; dy++ {
		for dx := -c; dx <= c; dx++ {
			if !t.CanBuildOn(p.Add(image.Pt(dx, dy)), s.layout.MaxBuildableHeight) {
				return false
			}
		}
	}
	return true
}

// score rates p as a settlement site, higher is better
func (s *siteSelector) score(p image.Point) float64 {
	t, cfg := s.t, s.cfg
	h := t.HeightAt(p)

	score := cfg.BaseScore

	// flatness
	diff := 0.0
	for _, o := range neighbours4 {
		n := p.Add(o.Mul(cfg.FlatnessStep))
		if t.InBounds(n) {
			diff += math.Abs(t.HeightAt(n) - h)
		}
	}
	score += math.Max(0, 1-diff*cfg.FlatnessScale) * cfg.FlatnessWeight

	// close to, but not on top of, a river
	if d := s.river.At(p); d >= cfg.RiverNear && d < cfg.RiverFar {
		score += (1 - float64(d)/float64(cfg.RiverFar)) * s.params.PreferRivers * cfg.RiverWeight
	}

	// likewise the coast
	if d := s.coast.At(p); d >= cfg.CoastNear && d < cfg.CoastFar {
		score += (1 - float64(d)/float64(cfg.CoastFar)) * s.params.PreferCoast * cfg.CoastWeight
	}

	if h > cfg.MidElevation {
		score -= (h - cfg.MidElevation) * s.params.AvoidMountains * cfg.ElevationPenalty
	}

	score += biomeBonus[t.BiomeAt(p)]

	return score
}

// selectSites returns up to Params.Count sites, best first, no two closer
// than Params.MinDistance.
func (s *siteSelector) selectSites() ([]image.Point, int) {
	cands := s.candidates()

	// stable, so equal scores keep scan order
	sort.SliceStable(cands, func(a, b int) bool {
		return cands[a].score > cands[b].score
	})

	minDistSq := s.params.MinDistance * s.params.MinDistance
	sites := []image.Point{}
	for _, c := range cands {
		if len(sites) >= s.params.Count {
			break
		}
		if tooClose(c.p, sites, minDistSq) {
			continue
		}
		sites = append(sites, c.p)
	}
	return sites, len(cands)
}

// tooClose returns if p is within sqrt(minDistSq) of any of the given sites
func tooClose(p image.Point, sites []image.Point, minDistSq float64) bool {
	for _, q := range sites {
		dx, dy := float64(p.X-q.X), float64(p.Y-q.Y)
		if dx*dx+dy*dy < minDistSq {
			return true
		}
	}
	return false
}

// assignTiers rolls a tier for each of n sites. The first (best) site is a
// capital whenever at least 3 settlements were requested.
func assignTiers(n, requested int, r TierRatios, rng *rand.Rand) []Tier {
	total := r.Village + r.Town + r.City + r.Capital
	out := make([]Tier, n)
	for i := range out {
		if i == 0 && requested >= 3 {
			out[i] = Capital
			continue
		}

		roll := rng.Float64() * total
		switch {
		case roll < r.Village:
			out[i] = Village
		case roll < r.Village+r.Town:
			out[i] = Town
		case roll < r.Village+r.Town+r.City:
			out[i] = City
		default:
			out[i] = Capital
		}
	}
	return out
}
