package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/atlashr/employee-api/internal/lib/logger/sl"
	"github.com/atlashr/employee-api/internal/metrics"
)

// Router serves the employee CRUD API plus the operational endpoints.
type Router struct {
	engine *gin.Engine
	log    *slog.Logger
	port   string
}

// NewRouter assembles the gin engine: recovery, CORS and metrics middleware,
// the five employee routes, the health check and the Prometheus exposition.
func NewRouter(
	log *slog.Logger,
	store EmployeeStore,
	mtr *metrics.Metrics,
	reg *prometheus.Registry,
	pinger DBPinger,
	port string,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.Default())
	engine.Use(metricsMiddleware(mtr))

	handler := NewEmployeeHandler(log, store)

	employees := engine.Group("/employees")
	{
		employees.GET("", handler.List)
		employees.POST("", handler.Create)
		employees.GET("/:id", handler.Get)
		employees.DELETE("/:id", handler.Delete)
		employees.PUT("/:id/:column/:value", handler.Update)
	}

	engine.GET("/healthz", gin.WrapH(NewHealthChecker(pinger, log)))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	return &Router{engine: engine, log: log, port: port}
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (r *Router) Run(ctx context.Context) error {
	shutdownTimeout := 10 * time.Second

	srv := &http.Server{
		Addr:              net.JoinHostPort("", r.port),
		Handler:           r.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	r.log.InfoContext(ctx, "HTTP server started", "port", r.port)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	r.log.InfoContext(ctx, "HTTP server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		r.log.Error("Failed to shut down HTTP server gracefully", sl.Err(err))
		return err
	}

	return nil
}
