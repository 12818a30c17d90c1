package citynet

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/citynet/internal/prng"
)

func TestSelectSitesNearRiver(t *testing.T) {
	cfg := quietConfig()
	cfg.Params.Count = 2
	cfg.Params.MinDistance = 10

	sites, candidates := newSiteSelector(riverTerrain(), cfg).selectSites()

	assert.Equal(t, []image.Point{{24, 8}, {40, 8}}, sites)
	assert.Greater(t, candidates, 2)
}

func TestSelectSitesSpacing(t *testing.T) {
	cfg := quietConfig()
	cfg.Params.Count = 10
	cfg.Params.MinDistance = 20

	sites, _ := newSiteSelector(flatTerrain(128, 128, 0.5, Grassland), cfg).selectSites()

	assert.NotEmpty(t, sites)
	assert.LessOrEqual(t, len(sites), 10)
	for i, a := range sites {
		for _, b := range sites[i+1:] {
			d := a.Sub(b)
			assert.GreaterOrEqual(t, d.X*d.X+d.Y*d.Y, 400, "%v %v", a, b)
		}
	}
}

func TestSelectSitesTinyIsland(t *testing.T) {
	// a 5x5 island can't fit the clearance around any site
	sites, candidates := newSiteSelector(islandTerrain(), quietConfig()).selectSites()
	assert.Empty(t, sites)
	assert.Equal(t, 0, candidates)
}

func TestSiteEligible(t *testing.T) {
	cfg := quietConfig()
	p := image.Pt(32, 32)

	cases := []struct {
		name string
		tr   *Terrain
		want bool
	}{
		{"grassland", flatTerrain(64, 64, 0.5, Grassland), true},
		{"mountain", flatTerrain(64, 64, 0.5, Mountain), false},
		{"too high", flatTerrain(64, 64, 0.8, Grassland), false},
		{"sea", flatTerrain(64, 64, 0.1, Ocean), false},
		{"river", riverTerrain(), false},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newSiteSelector(tt.tr, cfg).eligible(p))
		})
	}
}

func TestSiteEligibleNeedsClearance(t *testing.T) {
	tr := riverTerrain()
	s := newSiteSelector(tr, quietConfig())

	assert.False(t, s.eligible(image.Pt(30, 30))) // river 2 cells away
	assert.True(t, s.eligible(image.Pt(27, 30)))
}

func TestAssignTiers(t *testing.T) {
	ratios := TierRatios{Village: 1}

	tiers := assignTiers(4, 5, ratios, prng.New(1))
	assert.Equal(t, []Tier{Capital, Village, Village, Village}, tiers)

	// too few requested for a capital
	tiers = assignTiers(2, 2, ratios, prng.New(1))
	assert.Equal(t, []Tier{Village, Village}, tiers)

	// only the first is promoted
	tiers = assignTiers(3, 3, TierRatios{Town: 1}, prng.New(1))
	assert.Equal(t, []Tier{Capital, Town, Town}, tiers)

	assert.Empty(t, assignTiers(0, 3, ratios, prng.New(1)))
}

func TestAssignTiersDeterministic(t *testing.T) {
	r := DefaultConfig().Params.Ratios
	assert.Equal(t, assignTiers(20, 20, r, prng.New(99)), assignTiers(20, 20, r, prng.New(99)))
}
