package controllers

import (
	"github.com/lintang-b-s/navtrace/pkg/engine"
	"github.com/lintang-b-s/navtrace/pkg/export"
	"github.com/lintang-b-s/navtrace/pkg/geo"
	"github.com/lintang-b-s/navtrace/pkg/http/usecases"
	"github.com/lintang-b-s/navtrace/pkg/navigation"
	"github.com/lintang-b-s/navtrace/pkg/util"
)

type coordinateRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

type routeRequest struct {
	Profile     string              `json:"profile" validate:"required,oneof=driving-car cycling-regular foot-walking"`
	Polyline    string              `json:"polyline" validate:"required_without=Coordinates"`
	Precision   int                 `json:"precision" validate:"omitempty,min=1,max=7"`
	Duration    float64             `json:"duration" validate:"min=0"`
	Coordinates []coordinateRequest `json:"coordinates" validate:"required_without=Polyline,dive"`
}

type traceRequest struct {
	Routes    []routeRequest `json:"routes" validate:"required,min=1,max=3,dive"`
	Start     int            `json:"start" validate:"min=0"`
	Target    *int           `json:"target" validate:"omitempty,min=0"`
	TargetLat *float64       `json:"target_lat" validate:"omitempty,min=-90,max=90"`
	TargetLon *float64       `json:"target_lon" validate:"omitempty,min=-180,max=180"`
	Units     string         `json:"units" validate:"omitempty,oneof=km mi"`
}

func (r traceRequest) toQueries() []usecases.RouteQuery {
	var targetCoord *geo.Coordinate
	if r.TargetLat != nil && r.TargetLon != nil {
		c := geo.NewCoordinate(*r.TargetLat, *r.TargetLon)
		targetCoord = &c
	}

	queries := make([]usecases.RouteQuery, len(r.Routes))
	for i, route := range r.Routes {
		coords := make([]geo.Coordinate, len(route.Coordinates))
		for j, c := range route.Coordinates {
			coords[j] = geo.NewCoordinate(c.Lat, c.Lon)
		}
		queries[i] = usecases.RouteQuery{
			Profile:     route.Profile,
			Polyline:    route.Polyline,
			Precision:   route.Precision,
			Coordinates: coords,
			Duration:    route.Duration,
			Start:       r.Start,
			Target:      r.Target,
			TargetCoord: targetCoord,
		}
	}
	return queries
}

type nodeResponse struct {
	Index int     `json:"index"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

type stepResponse struct {
	Distances    []*float64 `json:"distances"`
	Visited      []bool     `json:"visited"`
	Predecessors []*int     `json:"predecessors"`
	Current      *int       `json:"current"`
}

type pathResponse struct {
	Reachable     bool         `json:"reachable"`
	Nodes         []int        `json:"nodes"`
	Coordinates   [][2]float64 `json:"coordinates"`
	Polyline      string       `json:"polyline"`
	TotalDistance float64      `json:"total_distance"`
	DistanceText  string       `json:"distance_text"`
}

type boundsResponse struct {
	SouthWest [2]float64 `json:"south_west"`
	NorthEast [2]float64 `json:"north_east"`
}

type traceResponse struct {
	ID             string          `json:"id"`
	Profile        string          `json:"profile"`
	Nodes          []nodeResponse  `json:"nodes"`
	Labels         []string        `json:"labels"`
	Adjacency      [][]*float64    `json:"adjacency"`
	AdjacencyTable [][]string      `json:"adjacency_table"`
	Steps          []stepResponse  `json:"steps"`
	Target         int             `json:"target"`
	Path           pathResponse    `json:"path"`
	DurationText   string          `json:"duration_text"`
	Bounds         *boundsResponse `json:"bounds"`
}

type stepViewResponse struct {
	TraceID      string       `json:"trace_id"`
	Index        int          `json:"index"`
	Total        int          `json:"total"`
	Step         stepResponse `json:"step"`
	PartialPath  [][2]float64 `json:"partial_path"`
	SettledCount int          `json:"settled_count"`
}

func coordinatePairs(coords []geo.Coordinate) [][2]float64 {
	pairs := make([][2]float64, len(coords))
	for i, c := range coords {
		pairs[i] = [2]float64{c.Lat, c.Lon}
	}
	return pairs
}

func NewStepResponse(view navigation.StepView) stepResponse {
	step := view.Step
	return stepResponse{
		Distances:    export.NullableDistances(step.Distances),
		Visited:      step.Visited,
		Predecessors: export.NullableVertices(step.Predecessors),
		Current:      export.NullableVertex(step.Current),
	}
}

func NewStepViewResponse(id string, view navigation.StepView) stepViewResponse {
	return stepViewResponse{
		TraceID:      id,
		Index:        view.Index,
		Total:        view.Total,
		Step:         NewStepResponse(view),
		PartialPath:  coordinatePairs(view.PartialPath),
		SettledCount: view.SettledCount,
	}
}

func NewPathResponse(res *engine.Result, units string) pathResponse {
	path := res.Path
	resp := pathResponse{
		Reachable:   path.Reachable,
		Nodes:       path.Nodes,
		Coordinates: coordinatePairs(path.Positions),
	}
	if path.Nodes == nil {
		resp.Nodes = []int{}
	}
	if !path.Reachable {
		return resp
	}

	resp.TotalDistance = path.TotalDistance
	resp.DistanceText = util.FormatDistance(path.TotalDistance, units)
	if encoded, err := geo.EncodePolyline(path.Positions, 5); err == nil {
		resp.Polyline = encoded
	}
	return resp
}

func NewTraceResponse(res *engine.Result, units string) traceResponse {
	nodes := make([]nodeResponse, len(res.Nodes))
	for i, n := range res.Nodes {
		nodes[i] = nodeResponse{Index: n.GetIndex(), Lat: n.GetLat(), Lon: n.GetLon()}
	}

	rows := res.Adjacency.Rows()
	adjacency := make([][]*float64, len(rows))
	for i, row := range rows {
		adjacency[i] = export.NullableDistances(row)
	}

	cursor := navigation.NewCursor(res.Trace)
	steps := make([]stepResponse, res.Trace.Len())
	for i := range steps {
		steps[i] = NewStepResponse(navigation.View(cursor.Jump(i), res.Nodes))
	}

	resp := traceResponse{
		ID:             res.ID,
		Profile:        res.Profile,
		Nodes:          nodes,
		Labels:         export.NodeLabels(len(res.Nodes)),
		Adjacency:      adjacency,
		AdjacencyTable: export.AdjacencyTable(res.Adjacency),
		Steps:          steps,
		Target:         res.Target,
		Path:           NewPathResponse(res, units),
	}
	if res.Duration > 0 {
		resp.DurationText = util.FormatDuration(res.Duration)
	}
	if res.Bounds != nil {
		minLat, minLon := res.Bounds.GetMinCoord()
		maxLat, maxLon := res.Bounds.GetMaxCoord()
		resp.Bounds = &boundsResponse{
			SouthWest: [2]float64{minLat, minLon},
			NorthEast: [2]float64{maxLat, maxLon},
		}
	}
	return resp
}

func NewTraceResponses(results []*engine.Result, units string) []traceResponse {
	resp := make([]traceResponse, len(results))
	for i, res := range results {
		resp[i] = NewTraceResponse(res, units)
	}
	return resp
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
