package main

import (
	"context"
	"errors"
	"flag"

	"github.com/lintang-b-s/navtrace/pkg/engine"
	"github.com/lintang-b-s/navtrace/pkg/geo"
	"github.com/lintang-b-s/navtrace/pkg/http"
	"github.com/lintang-b-s/navtrace/pkg/http/usecases"
	"github.com/lintang-b-s/navtrace/pkg/logger"
	"github.com/lintang-b-s/navtrace/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", false, "limit requests to RATE_LIMIT_RPS per second (also USE_RATE_LIMIT)")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync fails on some terminals

	traceEngine := engine.NewEngine(logger, geo.HaversineDistance,
		viper.GetInt("TRACE_MAX_POINTS"), viper.GetInt("TRACE_WORKERS"))

	traceService, err := usecases.NewTraceService(logger, traceEngine, viper.GetInt("TRACE_CACHE_SIZE"))
	if err != nil {
		panic(err)
	}

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)
	if _, err := api.Use(ctx, logger, *useRateLimit || viper.GetBool("USE_RATE_LIMIT"), traceService); err != nil {
		panic(err)
	}

	signal := http.GracefulShutdown()
	cleanup()

	if err := api.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server stopped with error", zap.Error(err))
	}
	logger.Info("navtrace server stopped", zap.String("signal", signal.String()))
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
