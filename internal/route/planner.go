package route

import (
	"image"

	"github.com/pkg/errors"

	"github.com/voidshard/citynet/internal/field"
)

var (
	// ErrNoRoute is returned when every strategy failed to reach the goal.
	ErrNoRoute = errors.New("no route found")
)

// Planner escalates through strategies from cheapest to most forgiving,
// returning the first path that ends exactly on the goal.
type Planner struct {
	costs  *field.Field[float64]
	stages []Strategy
}

// NewPlanner returns the standard escalation: direct A* (short routes only)
// then waypoint chaining with greedy bridging.
func NewPlanner(costs *field.Field[float64], cfg Config) *Planner {
	return NewPlannerWith(costs, NewAStar(costs, cfg), NewHierarchical(costs, cfg))
}

// NewPlannerWith returns a planner trying the given strategies in order.
func NewPlannerWith(costs *field.Field[float64], stages ...Strategy) *Planner {
	return &Planner{costs: costs, stages: stages}
}

// Route returns a path start -> goal inclusive. roads may be nil & is not
// modified.
func (p *Planner) Route(start, goal image.Point, roads *RoadSet) ([]image.Point, error) {
	if !p.costs.InBounds(start) || !p.costs.InBounds(goal) {
		return nil, errors.Wrapf(ErrNoRoute, "%v -> %v is out of bounds", start, goal)
	}

	req := &Request{Start: start, Goal: goal, Roads: roads}
	for _, s := range p.stages {
		path, ok := s.Route(req)
		if !ok || len(path) == 0 {
			continue
		}
		if path[0] == start && path[len(path)-1] == goal {
			return path, nil
		}
	}

	return nil, errors.Wrapf(ErrNoRoute, "%v -> %v", start, goal)
}
