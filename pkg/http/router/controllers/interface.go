package controllers

import (
	"context"

	"github.com/lintang-b-s/navtrace/pkg/engine"
	"github.com/lintang-b-s/navtrace/pkg/http/usecases"
)

type TraceService interface {
	TraceRoutes(ctx context.Context, queries []usecases.RouteQuery) ([]*engine.Result, error)
	GetResult(id string) (*engine.Result, error)
}
