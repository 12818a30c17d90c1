package route

// WaterPolicy decides what happens when a fallback segment cannot avoid
// terrain at or above the blocking cost.
type WaterPolicy string

const (
	WaterBridge WaterPolicy = "bridge" // accept the crossing; the road is flagged as a bridge later if it touches river / lake
	WaterReject WaterPolicy = "reject" // the whole route fails
)

// Config tunes the planner. See DefaultConfig for reasonable values.
type Config struct {
	IterationBudget       int         `yaml:"iterationBudget"`       // max nodes popped by a single A* search
	HeuristicWeight       float64     `yaml:"heuristicWeight"`       // multiplier on the euclidean heuristic, < 1 favours cost over directness
	DiagonalFactor        float64     `yaml:"diagonalFactor"`        // cost multiplier for diagonal moves
	RoadDiscount          float64     `yaml:"roadDiscount"`          // cost multiplier for cells already on a road
	BlockingCost          float64     `yaml:"blockingCost"`          // cells at or above this cost are never entered by A*
	HierarchicalThreshold float64     `yaml:"hierarchicalThreshold"` // straight line distance past which direct A* is skipped
	WaypointSpacing       int         `yaml:"waypointSpacing"`       // roughly one waypoint per this many cells
	WaypointSearchRadius  int         `yaml:"waypointSearchRadius"`  // waypoints move to the cheapest cell within this radius
	SegmentBudgetMin      int         `yaml:"segmentBudgetMin"`      // lower bound on the A* budget of one waypoint segment
	Water                 WaterPolicy `yaml:"water"`                 // how greedy fallback segments treat blocking terrain
}

// DefaultConfig returns the tuning used by the reference terrain generator.
func DefaultConfig() Config {
	return Config{
		IterationBudget:       150000,
		HeuristicWeight:       0.9,
		DiagonalFactor:        1.414,
		RoadDiscount:          0.3,
		BlockingCost:          5000,
		HierarchicalThreshold: 200,
		WaypointSpacing:       100,
		WaypointSearchRadius:  15,
		SegmentBudgetMin:      10000,
		Water:                 WaterBridge,
	}
}
