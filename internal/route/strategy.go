package route

import (
	"image"
)

// Request is a single routing problem.
type Request struct {
	Start image.Point
	Goal  image.Point

	// Roads already built, may be nil. Strategies must not modify it.
	Roads *RoadSet
}

// Strategy attempts a route & reports whether it reached the goal.
// A strategy that declines the request (ie. it's out of its range) simply
// reports false.
type Strategy interface {
	Route(req *Request) ([]image.Point, bool)
}
