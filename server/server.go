// Package server exposes the trace engines over HTTP.
//
// Routes:
//
//	POST /api/kruskal   {graph}
//	POST /api/prim      {graph, startNode?}
//	POST /api/dijkstra  {graph, sourceNode, targetNode?}
//	GET  /api/health
//	GET  /api/info
//	GET  /api/sample
//	GET  /metrics
//
// Every engine endpoint answers {runId, algorithm, steps, result}. Failures
// answer {error, message}; see errors.go for the status and kind mapping.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvtrace/config"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// serve context is cancelled.
const shutdownTimeout = 5 * time.Second

// Server is the HTTP adapter. It holds no per-run state.
type Server struct {
	cfg     config.Server
	logger  *log.Logger
	version string
	router  chi.Router
}

// New builds a Server and its routes.
func New(cfg config.Server, logger *log.Logger, version string) *Server {
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		version: version,
	}
	s.router = s.routes()

	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handleHealth())
		r.Get("/info", handleInfo(s.version))
		r.Get("/sample", handleSample())

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequestSize(s.cfg.MaxBodyBytes))
			r.Post("/kruskal", s.handleKruskal())
			r.Post("/prim", s.handlePrim())
			r.Post("/dijkstra", s.handleDijkstra())
		})
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// requestLogger logs one line per request at info level.
func requestLogger(l *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			l.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"elapsed", time.Since(start).Round(time.Microsecond),
				"reqId", middleware.GetReqID(r.Context()),
			)
		})
	}
}
