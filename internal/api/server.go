// Package api provides the HTTP API server and handlers for NextRead.
package api

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nextreadapp/nextread-server/internal/config"
	"github.com/nextreadapp/nextread-server/internal/genre"
	"github.com/nextreadapp/nextread-server/internal/history/readwise"
	"github.com/nextreadapp/nextread-server/internal/logger"
	"github.com/nextreadapp/nextread-server/internal/metrics"
	"github.com/nextreadapp/nextread-server/internal/ratelimit"
	"github.com/nextreadapp/nextread-server/internal/recommend"
	"github.com/nextreadapp/nextread-server/internal/validation"
)

// Inbound per-client rate limit. The pipeline fans out to paid upstreams,
// so one chatty client must not burn the provider quota.
const (
	inboundRatePerSecond = 2
	inboundBurst         = 5
)

// Dependencies bundles everything the HTTP layer needs.
type Dependencies struct {
	Config  *config.Config
	Engine  *recommend.Engine
	History *readwise.Client
	Sampler recommend.Sampler
	Store   *genre.Store
	Metrics *metrics.Metrics
	// Gatherer backs the /metrics endpoint; nil disables it.
	Gatherer prometheus.Gatherer
	Logger   *logger.Logger
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	cfg       *config.Config
	engine    *recommend.Engine
	history   *readwise.Client
	sampler   recommend.Sampler
	store     *genre.Store
	metrics   *metrics.Metrics
	validator *validation.Validator
	limiter   *ratelimit.KeyedRateLimiter
	router    *chi.Mux
	api       huma.API
	logger    *logger.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(deps Dependencies) *Server {
	s := &Server{
		cfg:       deps.Config,
		engine:    deps.Engine,
		history:   deps.History,
		sampler:   deps.Sampler,
		store:     deps.Store,
		metrics:   deps.Metrics,
		validator: validation.New(),
		limiter:   ratelimit.New(inboundRatePerSecond, inboundBurst),
		router:    chi.NewRouter(),
		logger:    deps.Logger,
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig("NextRead API", "1.0.0")
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerRecommendRoutes()
	s.registerHistoryRoutes()

	if deps.Gatherer != nil {
		s.router.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: splitOrigins(s.cfg.Server.CORSOrigins),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	s.router.Use(s.requestMetrics)
	s.router.Use(s.rateLimit)
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = []string{"*"}
	}
	return out
}
