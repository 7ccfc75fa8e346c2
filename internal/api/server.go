// Package api serves the gateway's HTTP surface with gin.
package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"quotegateway/internal/service"
)

// Options tunes the HTTP layer.
type Options struct {
	// RequestTimeout bounds every request's upstream work; 0 means none.
	RequestTimeout time.Duration
	// Pprof registers the profiling handlers under /debug/pprof.
	Pprof bool
	// Upstreams are reported by /healthz.
	Upstreams []Upstream
}

// Upstream is an outbound dependency with a circuit breaker.
type Upstream interface {
	Name() string
	State() string
}

// Server is the gateway's HTTP API.
type Server struct {
	engine *gin.Engine
	svc    *service.Service
	opts   Options
}

// NewServer builds the engine, its middlewares and routes.
func NewServer(svc *service.Service, opts Options) *Server {
	s := &Server{
		engine: gin.New(),
		svc:    svc,
		opts:   opts,
	}

	// recovery sits inside gzip so a 500 goes out through the same writer
	s.engine.Use(
		s.requestID(),
		s.logger(),
		s.metrics(),
		s.headers(),
		s.gzip(),
		s.recovery(),
		s.timeout(),
	)

	if opts.Pprof {
		pprof.Register(s.engine, "/debug/pprof")
	}
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.registerRoutes()
	zap.L().Debug("register route success")

	return s
}

// ServeHTTP makes the server usable as an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}
