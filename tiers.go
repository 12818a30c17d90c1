package citynet

// Tier is the rank of a settlement. Larger tiers have more buildings, a
// larger radius & are more likely to be walled.
type Tier string

const (
	Village Tier = "village" // a handful of houses
	Town    Tier = "town"    // a market & some trade
	City    Tier = "city"    // walls more often than not, industry at the edges
	Capital Tier = "capital" // the largest settlement, at most one is forced per map
)

// Use is the rough purpose of a building footprint.
type Use string

const (
	Residential Use = "residential" // homes, the common fallback
	Commercial  Use = "commercial"  // shops, inns, counting houses
	Industrial  Use = "industrial"  // smithies, tanneries, mills; usually on the outskirts
	Civic       Use = "civic"       // town hall, courts, temples; the central footprint is always civic
	Military    Use = "military"    // barracks, watch houses
	Market      Use = "market"      // open market squares
)

var (
	// all tiers, smallest first
	allTiers = []Tier{Village, Town, City, Capital}

	tierindex = map[Tier]int{
		Village: 0,
		Town:    1,
		City:    2,
		Capital: 3,
	}

	useindex = map[Use]int{
		Civic:       1,
		Market:      2,
		Commercial:  3,
		Residential: 4,
		Industrial:  5,
		Military:    6,
	}

	invUseIndex = map[int]Use{}
)

func init() {
	for k, v := range useindex {
		invUseIndex[v] = k
	}
}

// Rank returns the index of the tier, Village is 0.
// Unknown tiers rank below Village.
func (t Tier) Rank() int {
	v, ok := tierindex[t]
	if !ok {
		return -1
	}
	return v
}

// ID returns the (non zero) index of a use, 0 if unknown
func (u Use) ID() int {
	v, ok := useindex[u]
	if !ok {
		return 0
	}
	return v
}

// useForID is the inversion of Use.ID()
func useForID(i int) Use {
	u, ok := invUseIndex[i]
	if !ok {
		return ""
	}
	return u
}
