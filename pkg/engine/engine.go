package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lintang-b-s/navtrace/pkg/concurrent"
	da "github.com/lintang-b-s/navtrace/pkg/datastructure"
	"github.com/lintang-b-s/navtrace/pkg/engine/routing"
	"github.com/lintang-b-s/navtrace/pkg/geo"
	"github.com/lintang-b-s/navtrace/pkg/graphbuilder"
	"github.com/lintang-b-s/navtrace/pkg/metrics"
	"github.com/lintang-b-s/navtrace/pkg/spatialindex"
	"github.com/lintang-b-s/navtrace/pkg/util"
	"go.uber.org/zap"
)

const (
	ProfileDrivingCar     = "driving-car"
	ProfileCyclingRegular = "cycling-regular"
	ProfileFootWalking    = "foot-walking"
)

// RouteInput is one decoded route polyline to trace.
type RouteInput struct {
	Profile string
	Points  []geo.Coordinate
	Start   int

	// Target is the destination vertex. da.NoVertex means the last point of the route,
	// unless TargetCoord is set, then the node nearest to it is used.
	Target      int
	TargetCoord *geo.Coordinate

	// Duration is the travel time in seconds reported together with the polyline. display only.
	Duration float64
}

func NewRouteInput(profile string, points []geo.Coordinate) RouteInput {
	return RouteInput{
		Profile: profile,
		Points:  points,
		Start:   0,
		Target:  da.NoVertex,
	}
}

// Result is the immutable outcome of one route computation. callers keep their own step index.
type Result struct {
	ID        string
	Profile   string
	Nodes     []da.Node
	Adjacency *da.AdjacencyMatrix
	Trace     *da.Trace
	Target    int
	Path      da.PathResult
	Bounds    *da.BoundingBox
	Duration  float64
}

type Engine struct {
	log       *zap.Logger
	distance  graphbuilder.DistanceFunc
	maxPoints int
	workers   int
}

// NewEngine. maxPoints <= 0 disables the route size limit.
func NewEngine(log *zap.Logger, distance graphbuilder.DistanceFunc, maxPoints, workers int) *Engine {
	if distance == nil {
		distance = geo.HaversineDistance
	}
	return &Engine{
		log:       log,
		distance:  distance,
		maxPoints: maxPoints,
		workers:   workers,
	}
}

// Compute builds the path graph of in.Points, traces dijkstra from in.Start and reconstructs
// the path to the target.
func (e *Engine) Compute(in RouteInput) (*Result, error) {
	startTime := time.Now()

	n := len(in.Points)
	if n == 0 {
		metrics.ObserveFailure(in.Profile)
		return nil, util.WrapErrorf(ErrEmptyRoute, util.ErrBadParamInput, "route %q has no points", in.Profile)
	}
	if e.maxPoints > 0 && n > e.maxPoints {
		metrics.ObserveFailure(in.Profile)
		return nil, util.WrapErrorf(ErrTooManyPoints, util.ErrBadParamInput,
			"route %q has %d points, at most %d are allowed", in.Profile, n, e.maxPoints)
	}

	nodes, adj := graphbuilder.Build(in.Points, e.distance)

	trace, err := routing.NewDijkstraTracer(adj).Trace(in.Start)
	if err != nil {
		metrics.ObserveFailure(in.Profile)
		return nil, err
	}

	target, err := e.resolveTarget(in, nodes)
	if err != nil {
		metrics.ObserveFailure(in.Profile)
		return nil, err
	}

	path, err := routing.ReconstructFromTrace(trace, nodes, target)
	if err != nil {
		metrics.ObserveFailure(in.Profile)
		if util.ErrorCode(err) == util.ErrInternalServerError {
			e.log.Error("path reconstruction failed", zap.String("profile", in.Profile),
				zap.Int("target", target), zap.Error(err))
		}
		return nil, err
	}

	res := &Result{
		ID:        uuid.NewString(),
		Profile:   in.Profile,
		Nodes:     nodes,
		Adjacency: adj,
		Trace:     trace,
		Target:    target,
		Path:      path,
		Bounds:    da.NewBoundingBoxOf(nodes),
		Duration:  in.Duration,
	}

	took := time.Since(startTime)
	metrics.ObserveTrace(in.Profile, n, took, path.Reachable)
	e.log.Debug("route traced", zap.String("id", res.ID), zap.String("profile", in.Profile),
		zap.Int("nodes", n), zap.Int("steps", trace.Len()), zap.Bool("reachable", path.Reachable),
		zap.Float64("distance_m", path.TotalDistance), zap.Duration("took", took))

	return res, nil
}

func (e *Engine) resolveTarget(in RouteInput, nodes []da.Node) (int, error) {
	if in.Target != da.NoVertex {
		return in.Target, nil
	}
	if in.TargetCoord == nil {
		return len(nodes) - 1, nil
	}

	rt := spatialindex.NewRtree()
	rt.Build(nodes)
	target, snapDist, ok := rt.Nearest(in.TargetCoord.Lat, in.TargetCoord.Lon)
	if !ok {
		return da.NoVertex, util.WrapErrorf(ErrEmptyRoute, util.ErrBadParamInput, "route %q has no points", in.Profile)
	}
	e.log.Debug("target snapped to route node", zap.String("profile", in.Profile),
		zap.Int("target", target), zap.Float64("snap_distance_m", snapDist))
	return target, nil
}

type profileJob struct {
	idx int
	in  RouteInput
}

type profileResult struct {
	idx int
	res *Result
	err error
}

// ComputeProfiles traces several routes (typically one per transport profile) concurrently.
// each job owns its matrix and trace. results keep the order of inputs; the first error wins.
func (e *Engine) ComputeProfiles(ctx context.Context, inputs []RouteInput) ([]*Result, error) {
	jobs := make([]profileJob, len(inputs))
	for i, in := range inputs {
		jobs[i] = profileJob{idx: i, in: in}
	}

	done := concurrent.Run(e.workers, jobs, func(job profileJob) profileResult {
		if util.StopConcurrentOperation(ctx) {
			return profileResult{idx: job.idx, err: util.WrapErrorf(ctx.Err(), util.ErrCanceled,
				"trace of profile %q canceled", job.in.Profile)}
		}
		res, err := e.Compute(job.in)
		return profileResult{idx: job.idx, res: res, err: err}
	})

	results := make([]*Result, len(inputs))
	var firstErr error
	firstErrIdx := len(inputs)
	for _, r := range done {
		if r.err != nil {
			if r.idx < firstErrIdx {
				firstErr, firstErrIdx = r.err, r.idx
			}
			continue
		}
		results[r.idx] = r.res
	}
	if firstErr != nil {
		return nil, fmt.Errorf("profile %q: %w", inputs[firstErrIdx].Profile, firstErr)
	}
	return results, nil
}
