package http

import (
	"context"

	http_router "github.com/lintang-b-s/navtrace/pkg/http/router"
	"github.com/lintang-b-s/navtrace/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/navtrace/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use starts the api in the background. Wait returns its error once ctx is canceled.
func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	useRateLimit bool,
	traceService controllers.TraceService,
) (*Server, error) {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "60s")

	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	server := http_router.NewAPI(log)

	s.g.Go(func() error {
		return server.Run(
			ctx, config,
			useRateLimit, traceService,
		)
	})

	return s, nil
}

func (s *Server) Wait() error {
	return s.g.Wait()
}
