package usecases

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/navtrace/pkg/engine"
	"github.com/lintang-b-s/navtrace/pkg/util"
	"go.uber.org/zap"
)

// TraceService decodes route queries, runs the engine and keeps recent results in memory
// so that step navigation is a lookup.
type TraceService struct {
	log     *zap.Logger
	engine  TraceEngine
	results *lru.Cache[string, *engine.Result]
}

func NewTraceService(log *zap.Logger, traceEngine TraceEngine, cacheSize int) (*TraceService, error) {
	if cacheSize <= 0 {
		cacheSize = 1
	}
	results, err := lru.New[string, *engine.Result](cacheSize)
	if err != nil {
		return nil, err
	}
	return &TraceService{
		log:     log,
		engine:  traceEngine,
		results: results,
	}, nil
}

// TraceRoutes traces every query concurrently and remembers the results.
func (ts *TraceService) TraceRoutes(ctx context.Context, queries []RouteQuery) ([]*engine.Result, error) {
	if len(queries) == 0 {
		return nil, util.WrapErrorf(ErrNoRoutes, util.ErrBadParamInput, "at least one route is required")
	}

	inputs := make([]engine.RouteInput, len(queries))
	for i, q := range queries {
		in, err := q.toRouteInput()
		if err != nil {
			return nil, err
		}
		inputs[i] = in
	}

	results, err := ts.engine.ComputeProfiles(ctx, inputs)
	if err != nil {
		return nil, err
	}

	for _, res := range results {
		ts.results.Add(res.ID, res)
	}
	ts.log.Info("routes traced", zap.Int("routes", len(results)))
	return results, nil
}

// TraceRoute traces a single query.
func (ts *TraceService) TraceRoute(q RouteQuery) (*engine.Result, error) {
	in, err := q.toRouteInput()
	if err != nil {
		return nil, err
	}
	res, err := ts.engine.Compute(in)
	if err != nil {
		return nil, err
	}
	ts.results.Add(res.ID, res)
	return res, nil
}

// GetResult returns a previously computed result.
func (ts *TraceService) GetResult(id string) (*engine.Result, error) {
	res, ok := ts.results.Get(id)
	if !ok {
		return nil, util.WrapErrorf(ErrResultNotFound, util.ErrNotFound, "trace %s not found or expired", id)
	}
	return res, nil
}
