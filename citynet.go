package citynet

import (
	"encoding/json"
	"image"
	"os"

	"github.com/pkg/errors"

	"github.com/voidshard/citynet/internal/field"
	"github.com/voidshard/citynet/internal/prng"
	"github.com/voidshard/citynet/internal/territory"
)

var (
	// ErrInvalidTerrain implies the terrain slices don't match its size
	ErrInvalidTerrain = errors.New("invalid terrain")

	// ErrInvalidConfig implies a setting that can't produce anything sensible
	ErrInvalidConfig = errors.New("invalid config")
)

// random streams split from the top level seed
const (
	streamSites      = 0    // tiers & names
	streamSettlement = 1000 // + settlement ID; layout & walls
)

// Network holds the settlements & roads generated over a terrain.
type Network struct {
	Settlements []*Settlement
	Roads       []*Road `json:",omitempty"`
	Stats       *Stats  `json:",omitempty"`
	Seed        uint64

	cmap *imageMap
}

// Generate places settlements on the terrain & joins them with roads.
// Output is a pure function of (terrain, config, seed). A nil config means
// DefaultConfig().
//
// Difficult terrain is not an error: sites that don't fit, buildings that
// can't be placed & roads that can't be routed are skipped, so the result
// may hold fewer settlements or roads than asked for.
func Generate(t *Terrain, cfg *Config, seed uint64) (*Network, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	err = t.Validate()
	if err != nil {
		return nil, err
	}

	log := cfg.logger()
	n := &Network{
		Settlements: []*Settlement{},
		Roads:       []*Road{},
		Stats:       newStats(),
		Seed:        seed,
	}

	sites, candidates := newSiteSelector(t, cfg).selectSites()
	n.Stats.Candidates = candidates
	log.Debug("sites selected", "candidates", candidates, "wanted", cfg.Params.Count, "placed", len(sites))

	siteRng := prng.Stream(seed, streamSites)
	tiers := assignTiers(len(sites), cfg.Params.Count, cfg.Params.Ratios, siteRng)

	for i, p := range sites {
		s := &Settlement{ID: i, Name: randomName(siteRng), Center: p, Tier: tiers[i]}
		rng := prng.Stream(seed, streamSettlement+uint64(i))
		tc := cfg.tier(s.Tier)

		target := tc.MinBuildings + rng.Intn(tc.MaxBuildings-tc.MinBuildings+1)
		s.Footprints = newLayoutBuilder(t, &cfg.Layout, p, tc.Radius, rng).build(target)

		if rng.Float64() < tc.WallProbability {
			s.Walls, s.Gates = fortify(t, &cfg.Layout, s.Footprints)
			s.HasWalls = len(s.Walls) > 0
		}

		n.Settlements = append(n.Settlements, s)
		n.Stats.addSettlement(s)
		log.Debug(
			"settlement laid out",
			"name", s.Name, "tier", s.Tier, "center", p,
			"target", target, "footprints", len(s.Footprints), "walls", s.HasWalls,
		)
	}

	owners := claimTerritory(t, n.Settlements)

	costs := buildCostField(t, &cfg.Costs)
	roads, omitted := newNetworkComposer(t, cfg, costs).compose(n.Settlements)
	for _, r := range roads {
		n.Stats.addRoad(r)
	}
	n.Roads = roads
	n.Stats.Omitted = omitted

	n.cmap = newMap(t, &cfg.Network, n.Settlements, n.Roads, owners)

	log.Info(
		"network generated",
		"settlements", len(n.Settlements), "roads", len(n.Roads),
		"bridges", n.Stats.Bridges, "omitted", omitted,
	)
	return n, nil
}

// claimTerritory splits the map between settlements, filling in each
// settlement's outline & neighbours. Returns the owning settlement of every
// cell (-1 with no settlements).
func claimTerritory(t *Terrain, settlements []*Settlement) *field.Field[int] {
	centers := make([]image.Point, len(settlements))
	for i, s := range settlements {
		centers[i] = s.Center
	}

	cells := territory.Cells(t.Width, t.Height, centers)
	for i, c := range cells {
		settlements[i].Territory = c.Outline()
	}

	owners := territory.Raster(t.Width, t.Height, cells)
	for _, pair := range territory.Neighbours(owners) {
		a, b := settlements[pair[0]], settlements[pair[1]]
		a.Neighbours = append(a.Neighbours, b.ID)
		b.Neighbours = append(b.Neighbours, a.ID)
	}
	return owners
}

// JSON returns the network as json.
func (n *Network) JSON() ([]byte, error) {
	return json.Marshal(n)
}

// SaveJSON writes a json file to the given path.
func (n *Network) SaveJSON(fpath string) error {
	data, err := n.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, data, 0644)
}

// Map returns the underlying CityMap.
// The map essentially holds the same data but saved graphically rather than in
// Go structs.
func (n *Network) Map() CityMap {
	return n.cmap
}
