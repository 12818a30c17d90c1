package citynet

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/voidshard/citynet/internal/route"
)

// WaterPolicy decides whether a road that can only be completed by stepping
// through blocking terrain (ie. open water) is kept as a bridge or dropped.
type WaterPolicy = route.WaterPolicy

const (
	WaterBridge = route.WaterBridge
	WaterReject = route.WaterReject
)

// Config holds everything that tunes a generation run.
// Start from DefaultConfig(); zero values are rarely what you want.
type Config struct {
	Params  Params               `yaml:"params"`
	Tiers   map[Tier]*TierConfig `yaml:"tiers"` // a tier given in yaml replaces the default entry entirely
	Costs   CostTable            `yaml:"costs"`
	Sites   SiteConfig           `yaml:"sites"`
	Layout  LayoutConfig         `yaml:"layout"`
	Planner route.Config         `yaml:"planner"`
	Network NetworkConfig        `yaml:"network"`

	// Logger for progress & omitted roads, slog.Default() if nil
	Logger *slog.Logger `yaml:"-"`
}

// Params is the small bundle most callers actually want to change.
type Params struct {
	Count          int        `yaml:"count"`          // settlements wanted; fewer may be placed
	MinDistance    float64    `yaml:"minDistance"`    // min distance between settlement centres
	Ratios         TierRatios `yaml:"ratios"`         // relative odds of each tier
	PreferRivers   float64    `yaml:"preferRivers"`   // weight of the river proximity bonus
	PreferCoast    float64    `yaml:"preferCoast"`    // weight of the coast proximity bonus
	AvoidMountains float64    `yaml:"avoidMountains"` // weight of the high elevation penalty
}

// TierRatios are relative odds, they need not sum to 1.
type TierRatios struct {
	Village float64 `yaml:"village"`
	Town    float64 `yaml:"town"`
	City    float64 `yaml:"city"`
	Capital float64 `yaml:"capital"`
}

// TierConfig outlines a settlement of a given tier.
type TierConfig struct {
	MinBuildings    int     `yaml:"minBuildings"` // target building count is rolled in [Min,Max]
	MaxBuildings    int     `yaml:"maxBuildings"`
	Radius          int     `yaml:"radius"`          // buildings centres stay within this of the settlement centre
	WallProbability float64 `yaml:"wallProbability"` // chance of a wall ring
}

// CostTable sets the movement cost of terrain for roads.
type CostTable struct {
	DeepWater    float64 `yaml:"deepWater"`
	ShallowWater float64 `yaml:"shallowWater"` // also lakes
	River        float64 `yaml:"river"`
	Mountain     float64 `yaml:"mountain"`
	Forest       float64 `yaml:"forest"`
	Marsh        float64 `yaml:"marsh"`
	Desert       float64 `yaml:"desert"`
	Snow         float64 `yaml:"snow"`
	Plain        float64 `yaml:"plain"`
	Beach        float64 `yaml:"beach"`

	DeepWaterDepth       float64 `yaml:"deepWaterDepth"`       // sea deeper than this below sea level is deep water
	HighElevation        float64 `yaml:"highElevation"`        // steep penalty starts here
	HighElevationPenalty float64 `yaml:"highElevationPenalty"` // cost per unit height above HighElevation
	MidElevation         float64 `yaml:"midElevation"`         // mild penalty starts here
	MidElevationPenalty  float64 `yaml:"midElevationPenalty"`  // cost per unit height above MidElevation
	SlopeWeight          float64 `yaml:"slopeWeight"`          // cost per unit of max neighbour height difference
}

// SiteConfig tunes site scoring.
type SiteConfig struct {
	MaxElevation float64 `yaml:"maxElevation"` // no sites above this
	Clearance    int     `yaml:"clearance"`    // every cell within this (chebyshev) of a site must be buildable
	BaseScore    float64 `yaml:"baseScore"`
	MinScore     float64 `yaml:"minScore"` // candidates scoring at or below this are dropped

	FlatnessStep   int     `yaml:"flatnessStep"`  // distance of the 4 height samples
	FlatnessScale  float64 `yaml:"flatnessScale"` // flatness is 1 - totalDiff*scale, clamped at 0
	FlatnessWeight float64 `yaml:"flatnessWeight"`

	RiverMaxDistance int     `yaml:"riverMaxDistance"` // cap of the river distance field
	RiverNear        int     `yaml:"riverNear"`        // bonus applies in [RiverNear, RiverFar)
	RiverFar         int     `yaml:"riverFar"`
	RiverWeight      float64 `yaml:"riverWeight"`

	CoastMaxDistance int     `yaml:"coastMaxDistance"`
	CoastNear        int     `yaml:"coastNear"`
	CoastFar         int     `yaml:"coastFar"`
	CoastWeight      float64 `yaml:"coastWeight"`

	MidElevation     float64 `yaml:"midElevation"`     // elevation penalty starts here
	ElevationPenalty float64 `yaml:"elevationPenalty"` // per unit height above MidElevation, times AvoidMountains
}

// LayoutConfig tunes building layout & walls.
type LayoutConfig struct {
	StreetWidth        int     `yaml:"streetWidth"`        // clear ring kept around every footprint
	Margin             int     `yaml:"margin"`             // cells kept clear at the map edge
	MaxBuildableHeight float64 `yaml:"maxBuildableHeight"` // no buildings above this
	CentralMin         int     `yaml:"centralMin"`         // central footprint extent is rolled in [Min,Max]
	CentralMax         int     `yaml:"centralMax"`
	BlockMin           int     `yaml:"blockMin"` // other footprint extents are rolled in [Min,Max]
	BlockMax           int     `yaml:"blockMax"`
	AttemptFactor      int     `yaml:"attemptFactor"` // placement attempts per wanted building
	WallPadding        int     `yaml:"wallPadding"`   // dilation of the occupied boundary
	MinWallTiles       int     `yaml:"minWallTiles"`  // settlements occupying fewer cells are never walled
}

// NetworkConfig tunes the road network.
type NetworkConfig struct {
	Samples       int     `yaml:"samples"`       // straight line cost samples per edge weight
	SampleCap     float64 `yaml:"sampleCap"`     // max cost of a single sample
	BridgeCost    float64 `yaml:"bridgeCost"`    // path cells at or above this are straightened as bridges
	Lookahead     int     `yaml:"lookahead"`     // smoothing skips ahead at most this many cells
	SmoothMaxCost float64 `yaml:"smoothMaxCost"` // smoothing only crosses cells at or below this
	RoadBuffer    int     `yaml:"roadBuffer"`    // spanning tree roads reserve this much either side for reuse

	RedundancyTier           Tier `yaml:"redundancyTier"`           // settlements of this tier or larger get extra roads
	RedundancyMinLinks       int  `yaml:"redundancyMinLinks"`       // ... if they have fewer spanning tree roads than this
	RedundancyMinSettlements int  `yaml:"redundancyMinSettlements"` // no extra roads unless there are more settlements than this

	RoadFieldMax  float64 `yaml:"roadFieldMax"`  // road distance field stops expanding past this
	RoadFieldFill float64 `yaml:"roadFieldFill"` // road distance of unreached cells
}

// DefaultConfig returns a Config with sane defaults.
func DefaultConfig() *Config {
	return &Config{
		Params: Params{
			Count:          5,
			MinDistance:    60,
			Ratios:         TierRatios{Village: 0.4, Town: 0.3, City: 0.2, Capital: 0.1},
			PreferRivers:   0.7,
			PreferCoast:    0.5,
			AvoidMountains: 0.8,
		},
		Tiers: map[Tier]*TierConfig{
			Village: {MinBuildings: 3, MaxBuildings: 5, Radius: 8, WallProbability: 0.1},
			Town:    {MinBuildings: 8, MaxBuildings: 15, Radius: 15, WallProbability: 0.3},
			City:    {MinBuildings: 20, MaxBuildings: 40, Radius: 25, WallProbability: 0.6},
			Capital: {MinBuildings: 50, MaxBuildings: 100, Radius: 40, WallProbability: 0.85},
		},
		Costs: CostTable{
			DeepWater:            10000,
			ShallowWater:         500,
			River:                300,
			Mountain:             80,
			Forest:               8,
			Marsh:                25,
			Desert:               4,
			Snow:                 12,
			Plain:                1,
			Beach:                2,
			DeepWaterDepth:       0.15,
			HighElevation:        0.7,
			HighElevationPenalty: 120,
			MidElevation:         0.55,
			MidElevationPenalty:  15,
			SlopeWeight:          20,
		},
		Sites: SiteConfig{
			MaxElevation:     0.72,
			Clearance:        4,
			BaseScore:        0.5,
			MinScore:         0.35,
			FlatnessStep:     2,
			FlatnessScale:    2.5,
			FlatnessWeight:   0.3,
			RiverMaxDistance: 25,
			RiverNear:        2,
			RiverFar:         18,
			RiverWeight:      0.4,
			CoastMaxDistance: 30,
			CoastNear:        5,
			CoastFar:         25,
			CoastWeight:      0.35,
			MidElevation:     0.6,
			ElevationPenalty: 2.5,
		},
		Layout: LayoutConfig{
			StreetWidth:        2,
			Margin:             2,
			MaxBuildableHeight: 0.72,
			CentralMin:         4,
			CentralMax:         6,
			BlockMin:           3,
			BlockMax:           5,
			AttemptFactor:      8,
			WallPadding:        2,
			MinWallTiles:       10,
		},
		Planner: route.DefaultConfig(),
		Network: NetworkConfig{
			Samples:                  30,
			SampleCap:                200,
			BridgeCost:               200,
			Lookahead:                9,
			SmoothMaxCost:            100,
			RoadBuffer:               1,
			RedundancyTier:           City,
			RedundancyMinLinks:       2,
			RedundancyMinSettlements: 0,
			RoadFieldMax:             8,
			RoadFieldFill:            1000,
		},
	}
}

// LoadConfig reads a yaml file over the top of DefaultConfig()
func LoadConfig(fpath string) (*Config, error) {
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", fpath)
	}
	cfg := DefaultConfig()
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "parsing %s: %v", fpath, err)
	}
	return cfg, cfg.Validate()
}

// tier returns the config for t, which Validate ensures exists
func (c *Config) tier(t Tier) *TierConfig {
	return c.Tiers[t]
}

// logger returns the configured logger or the default
func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// Validate checks for settings that can't produce anything sensible.
func (c *Config) Validate() error {
	p := c.Params
	if p.Count < 0 {
		return errors.Wrapf(ErrInvalidConfig, "count %d is negative", p.Count)
	}
	if p.MinDistance < 0 {
		return errors.Wrapf(ErrInvalidConfig, "min distance %v is negative", p.MinDistance)
	}
	r := p.Ratios
	if r.Village < 0 || r.Town < 0 || r.City < 0 || r.Capital < 0 {
		return errors.Wrap(ErrInvalidConfig, "tier ratios must not be negative")
	}
	if r.Village+r.Town+r.City+r.Capital <= 0 {
		return errors.Wrap(ErrInvalidConfig, "tier ratios sum to zero")
	}

	for _, t := range allTiers {
		tc, ok := c.Tiers[t]
		if !ok || tc == nil {
			return errors.Wrapf(ErrInvalidConfig, "missing tier %s", t)
		}
		if tc.MinBuildings < 1 || tc.MaxBuildings < tc.MinBuildings {
			return errors.Wrapf(ErrInvalidConfig, "tier %s buildings [%d,%d]", t, tc.MinBuildings, tc.MaxBuildings)
		}
		if tc.Radius <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "tier %s radius %d", t, tc.Radius)
		}
		if tc.WallProbability < 0 || tc.WallProbability > 1 {
			return errors.Wrapf(ErrInvalidConfig, "tier %s wall probability %v", t, tc.WallProbability)
		}
	}

	s := c.Sites
	if s.FlatnessStep < 1 || s.Clearance < 0 || s.RiverMaxDistance < 0 || s.CoastMaxDistance < 0 {
		return errors.Wrap(ErrInvalidConfig, "site distances must be positive")
	}

	l := c.Layout
	if l.StreetWidth < 0 || l.Margin < 0 || l.WallPadding < 0 {
		return errors.Wrap(ErrInvalidConfig, "layout widths must not be negative")
	}
	if l.CentralMin < 1 || l.CentralMax < l.CentralMin || l.BlockMin < 1 || l.BlockMax < l.BlockMin {
		return errors.Wrap(ErrInvalidConfig, "footprint extents")
	}
	if l.AttemptFactor < 1 {
		return errors.Wrapf(ErrInvalidConfig, "attempt factor %d", l.AttemptFactor)
	}

	pl := c.Planner
	if pl.IterationBudget < 1 || pl.SegmentBudgetMin < 1 {
		return errors.Wrap(ErrInvalidConfig, "planner budgets must be positive")
	}
	if pl.HeuristicWeight < 0 || pl.DiagonalFactor <= 0 || pl.RoadDiscount <= 0 || pl.BlockingCost <= 0 {
		return errors.Wrap(ErrInvalidConfig, "planner weights must be positive")
	}
	if pl.WaypointSpacing < 1 || pl.WaypointSearchRadius < 0 {
		return errors.Wrap(ErrInvalidConfig, "waypoint settings")
	}
	if pl.Water != WaterBridge && pl.Water != WaterReject {
		return errors.Wrapf(ErrInvalidConfig, "unknown water policy %q", pl.Water)
	}

	n := c.Network
	if n.Samples < 1 || n.Lookahead < 1 || n.RoadBuffer < 0 {
		return errors.Wrap(ErrInvalidConfig, "network sampling settings")
	}
	if n.RedundancyTier.Rank() < 0 {
		return errors.Wrapf(ErrInvalidConfig, "unknown redundancy tier %q", n.RedundancyTier)
	}

	return nil
}
