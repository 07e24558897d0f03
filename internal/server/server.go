package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/waitlist/internal/service"
	"github.com/huynhanx03/waitlist/pkg/common/apperr"
	"github.com/huynhanx03/waitlist/pkg/common/http/handler"
	"github.com/huynhanx03/waitlist/pkg/settings"
)

// Server exposes one waitlist over HTTP.
type Server struct {
	cfg    settings.Server
	svc    *service.Waitlist
	logger *zap.Logger
	engine *gin.Engine
}

// New builds the router. gatherer backs the /metrics endpoint.
func New(cfg settings.Server, svc *service.Waitlist, gatherer prometheus.Gatherer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	s := &Server{
		cfg:    cfg,
		svc:    svc,
		logger: logger,
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery(), s.accessLog())

	group := s.engine.Group("/waitlist")
	group.GET("", handler.WrapQuery(s.snapshot))
	group.POST("/front", handler.Wrap(s.addFront))
	group.POST("/end", handler.Wrap(s.addEnd))
	group.DELETE("", handler.Wrap(s.remove))

	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("waitlist server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "failed to serve")
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		timeout := time.Duration(s.cfg.ShutdownTimeout) * time.Second
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		s.logger.Info("waitlist server shutting down")
		return errors.Wrap(srv.Shutdown(shutdownCtx), "failed to shut down")
	})
	return g.Wait()
}

func (s *Server) addFront(_ context.Context, req *NameRequest) (AddedResponse, error) {
	return toAddedResponse(s.svc.AddFront(req.Name)), nil
}

func (s *Server) addEnd(_ context.Context, req *NameRequest) (AddedResponse, error) {
	return toAddedResponse(s.svc.AddEnd(req.Name)), nil
}

func (s *Server) remove(_ context.Context, req *NameRequest) (RemovalResponse, error) {
	res := s.svc.Remove(req.Name)
	if !res.Found() {
		return RemovalResponse{}, apperr.NewError(res.Name, apperr.CodeNotFound, apperr.MsgNotFound, http.StatusNotFound, nil)
	}
	return toRemovalResponse(res), nil
}

func (s *Server) snapshot(_ context.Context) (SnapshotResponse, error) {
	return toSnapshotResponse(s.svc.Snapshot()), nil
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			s.logger.Warn("request failed", fields...)
			return
		}
		s.logger.Debug("request", fields...)
	}
}
