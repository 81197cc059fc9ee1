package usecases

import (
	"errors"

	da "github.com/lintang-b-s/navtrace/pkg/datastructure"
	"github.com/lintang-b-s/navtrace/pkg/engine"
	"github.com/lintang-b-s/navtrace/pkg/geo"
	"github.com/lintang-b-s/navtrace/pkg/util"
)

var (
	ErrNoRoutes       = errors.New("no routes given")
	ErrResultNotFound = errors.New("trace result not found")
	ErrNoGeometry     = errors.New("route has neither polyline nor coordinates")
)

// RouteQuery is one route as delivered by the directions provider: an encoded polyline
// (precision 5 or 6) or already decoded coordinates.
type RouteQuery struct {
	Profile     string
	Polyline    string
	Precision   int
	Coordinates []geo.Coordinate
	Duration    float64

	Start       int
	Target      *int
	TargetCoord *geo.Coordinate
}

func (q RouteQuery) points() ([]geo.Coordinate, error) {
	if len(q.Coordinates) > 0 {
		return q.Coordinates, nil
	}
	if q.Polyline == "" {
		return nil, util.WrapErrorf(ErrNoGeometry, util.ErrBadParamInput, "route %q has neither polyline nor coordinates", q.Profile)
	}
	points, err := geo.DecodePolyline(q.Polyline, q.Precision)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "route %q: cannot decode polyline", q.Profile)
	}
	return points, nil
}

func (q RouteQuery) toRouteInput() (engine.RouteInput, error) {
	points, err := q.points()
	if err != nil {
		return engine.RouteInput{}, err
	}

	in := engine.NewRouteInput(q.Profile, points)
	in.Start = q.Start
	in.Target = da.NoVertex
	if q.Target != nil {
		in.Target = *q.Target
	}
	in.TargetCoord = q.TargetCoord
	in.Duration = q.Duration
	return in, nil
}
