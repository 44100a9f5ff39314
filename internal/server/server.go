package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Option configures a Server via functional arguments.
type Option func(*Options)

// Options holds Server settings.
type Options struct {
	// Logger receives one record per request. Defaults to a discard logger.
	Logger *slog.Logger
	// Registry collects the server metrics and backs /metrics.
	// Defaults to a fresh registry.
	Registry *prometheus.Registry
	// MaxMazeBytes bounds the request body. Defaults to 1 MiB.
	MaxMazeBytes int64
	// MaxCells bounds Height×Width of a parsed maze. Defaults to 40000.
	MaxCells int
	// SolveTimeout bounds a single solve. Defaults to 10s.
	SolveTimeout time.Duration
	// ShutdownTimeout bounds graceful shutdown in Run. Defaults to 5s.
	ShutdownTimeout time.Duration
}

// DefaultOptions returns the settings described on Options.
func DefaultOptions() Options {
	return Options{
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		MaxMazeBytes:    1 << 20,
		MaxCells:        40000,
		SolveTimeout:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(r *prometheus.Registry) Option {
	return func(o *Options) {
		if r != nil {
			o.Registry = r
		}
	}
}

// WithMaxMazeBytes bounds the request body size.
func WithMaxMazeBytes(n int64) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxMazeBytes = n
		}
	}
}

// WithMaxCells bounds the number of cells a maze may have.
func WithMaxCells(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxCells = n
		}
	}
}

// WithSolveTimeout bounds how long a single solve may run.
func WithSolveTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.SolveTimeout = d
		}
	}
}

// Server is the HTTP front end of the search engine.
type Server struct {
	opts    Options
	router  *gin.Engine
	metrics *metrics
}

// New builds a Server with its routes registered.
func New(opts ...Option) *Server {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Registry == nil {
		o.Registry = prometheus.NewRegistry()
	}

	s := &Server{opts: o, metrics: newMetrics(o.Registry)}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(o.Registry, promhttp.HandlerOpts{})))
	v1 := r.Group("/v1")
	v1.POST("/solve", s.handleSolve)
	v1.POST("/render", s.handleRender)
	s.router = r

	return s
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.opts.Logger.Info("HTTP server listening.", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	s.opts.Logger.Info("HTTP server shutting down.")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

// requestLogger logs one record per request through slog.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.opts.Logger.Info("HTTP request.",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
