package citynet

import (
	"image"
)

// Stats holds generic stats about the network
type Stats struct {
	// Count of settlements of a given tier
	SettlementsByTier map[Tier]int

	// Count of building footprints of a given use
	FootprintsByUse map[Use]int

	// Site candidates that passed scoring (before spacing)
	Candidates int

	Walled    int `json:",omitempty"`
	Roads     int `json:",omitempty"`
	Bridges   int `json:",omitempty"`
	Redundant int `json:",omitempty"` // roads added beyond the spanning tree
	Omitted   int `json:",omitempty"` // roads the planner could not route
}

// newStats returns blank Stats
func newStats() *Stats {
	return &Stats{SettlementsByTier: map[Tier]int{}, FootprintsByUse: map[Use]int{}}
}

// addSettlement counts s & its footprints
func (s *Stats) addSettlement(in *Settlement) {
	count, _ := s.SettlementsByTier[in.Tier]
	s.SettlementsByTier[in.Tier] = count + 1

	for _, f := range in.Footprints {
		n, _ := s.FootprintsByUse[f.Use]
		s.FootprintsByUse[f.Use] = n + 1
	}

	if in.HasWalls {
		s.Walled++
	}
}

// addRoad counts r
func (s *Stats) addRoad(r *Road) {
	s.Roads++
	if r.Bridge {
		s.Bridges++
	}
	if r.Redundant {
		s.Redundant++
	}
}

// Settlement is a single village, town, city or capital.
type Settlement struct {
	// ID is the index of the settlement in Network.Settlements
	ID int

	// Name for display
	Name string

	// Center the site chosen for the settlement, roads start & end here
	Center image.Point

	// Tier see tiers.go
	Tier Tier

	// building footprints, the first is the central civic footprint
	Footprints []*Footprint `json:",omitempty"`

	// if the settlement has a wall ring
	HasWalls bool `json:",omitempty"`

	// wall & gate cells, row-major order. Disjoint.
	Walls []image.Point `json:",omitempty"`
	Gates []image.Point `json:",omitempty"`

	// Territory is the outline of the land closer to this settlement than
	// any other
	Territory []image.Point `json:",omitempty"`

	// Neighbours are the IDs of settlements whose territory borders ours
	Neighbours []int `json:",omitempty"`
}

// Occupied returns every cell covered by a footprint
func (s *Settlement) Occupied() []image.Point {
	out := []image.Point{}
	for _, f := range s.Footprints {
		out = append(out, f.Tiles()...)
	}
	return out
}

// Road connects two settlements.
type Road struct {
	// ID is the index of the road in Network.Roads
	ID int

	// From & To are settlement IDs
	From int
	To   int

	// Path from the centre of From to the centre of To, inclusive
	Path []image.Point

	// Bridge is set if any cell of Path is on a river or lake
	Bridge bool `json:",omitempty"`

	// Redundant is set for roads added beyond the spanning tree
	Redundant bool `json:",omitempty"`
}
