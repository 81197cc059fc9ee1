package usecases

import (
	"context"

	"github.com/lintang-b-s/navtrace/pkg/engine"
)

type TraceEngine interface {
	Compute(in engine.RouteInput) (*engine.Result, error)
	ComputeProfiles(ctx context.Context, inputs []engine.RouteInput) ([]*engine.Result, error)
}
