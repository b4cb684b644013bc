package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/Domenick1991/flightadmin/api"
	"github.com/Domenick1991/flightadmin/config"
	"github.com/Domenick1991/flightadmin/internal/metrics"
	"github.com/Domenick1991/flightadmin/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase, sessions api.SessionStore, m *metrics.Metrics, log *zap.SugaredLogger) error {
	router := newRouter(cfg, flightSvc, sessions, m)

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	log.Infow("http server started", "address", cfg.HTTP.Address)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func newRouter(cfg *config.Config, flightSvc flights.FlightUseCase, sessions api.SessionStore, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	flightHandler := api.NewFlightHandler(flightSvc)
	authHandler := api.NewAuthHandler(sessions, cfg.Admin.Password, m)

	public := router.Group("/api/flights")
	guarded := router.Group("/api/flights", api.RequireSession(sessions))
	flightHandler.Register(public, guarded)

	authHandler.Register(router.Group("/api/admin"))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.HTTP.SwaggerDir != "" {
		router.Static("/swagger", cfg.HTTP.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/flights.json"),
		)))
	}

	return router
}
