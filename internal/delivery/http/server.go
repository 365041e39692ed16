package delivery_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"bannylog-post-service/internal/delivery/http/middleware"
	post_http "bannylog-post-service/internal/delivery/http/post"
	"bannylog-post-service/internal/logger"
	"bannylog-post-service/internal/metrics"
)

type Server struct {
	router  *gin.Engine
	server  *http.Server
	address string
	port    int
	log     *logger.Logger
}

func NewServer(
	api *post_http.PostHTTPService,
	address string,
	port int,
	env string,
	log *logger.Logger,
	metricsProvider metrics.MetricsProvider,
) *Server {
	if env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.Logger(log),
		middleware.Metrics(metricsProvider),
	)
	api.RegisterRoutes(router)

	return &Server{
		router:  router,
		address: address,
		port:    port,
		log:     log,
	}
}

func (s *Server) Run() error {
	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.address, s.port),
		Handler: s.router,
	}

	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
