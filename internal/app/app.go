// Package app assembles the shop's HTTP surface from the catalog and basket
// packages.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"Bootique/internal/basket"
	"Bootique/internal/catalog"
	"Bootique/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	BasketWriteLimit  int
	BasketWriteWindow time.Duration
	TrustForwardedFor bool
}

type Deps struct {
	Catalog catalog.Store
	Baskets *basket.Store
}

const readyTimeout = 1 * time.Second

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	log := httpDeps.Log
	if log == nil {
		log = zap.NewNop()
	}

	var basketMetrics *basket.Metrics
	if httpDeps.Registry != nil {
		basketMetrics = basket.NewMetrics(httpDeps.Registry, deps.Baskets)
	}

	catalogSrv := &catalog.Server{Store: deps.Catalog, Log: log}
	basketSrv := &basket.Server{
		Service: &basket.Service{
			Baskets: deps.Baskets,
			Catalog: deps.Catalog,
			Metrics: basketMetrics,
			Log:     log,
		},
		Log: log,
	}
	if httpDeps.BasketWriteLimit > 0 {
		limiter := kit.NewIPRateLimiter(httpDeps.BasketWriteLimit, httpDeps.BasketWriteWindow)
		limiter.TrustForwardedFor = httpDeps.TrustForwardedFor
		basketSrv.WriteLimiter = limiter
	}

	r := chi.NewRouter()
	setupMiddleware(r, log)
	setupMetrics(r, httpDeps)

	r.Get("/healthz", healthz)
	r.Get("/readyz", readyz(deps.Catalog, log))
	r.Get("/api-docs", apiDocs)

	r.Get("/", catalogSrv.ListHandler())
	r.Mount("/products", catalogSrv.Routes())
	r.Mount("/baskets", basketSrv.Routes())

	return r
}

func setupMiddleware(r *chi.Mux, log *zap.Logger) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer(log))
	r.Use(kit.Logging(log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func readyz(store catalog.Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			log.Warn("readyz failed: catalog", zap.Error(err))
			kit.WriteError(w, r, http.StatusServiceUnavailable, "catalog not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
