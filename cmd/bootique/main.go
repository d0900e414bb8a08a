package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"Bootique/internal/app"
	"Bootique/internal/basket"
	"Bootique/internal/catalog"
	"Bootique/internal/config"
	"Bootique/pkg/kit"
)

const service = "bootique"

func main() {
	a := &cli.App{
		Name:  service,
		Usage: "in-memory product catalog and shopping baskets over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Value:   ".env",
				Usage:   "optional dotenv file applied before reading the environment",
				EnvVars: []string{"BOOTIQUE_ENV_FILE"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP server",
				Action: serve,
			},
			{
				Name:   "products",
				Usage:  "print the resolved catalog as JSON",
				Action: printProducts,
			},
		},
		DefaultCommand: "serve",
	}

	if err := a.Run(os.Args); err != nil {
		log := kit.NewLogger(service, "info")
		log.Fatal("bootique stopped", zap.Error(err))
	}
}

func serve(c *cli.Context) error {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return err
	}

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	store, err := loadCatalog(c.Context, cfg, log)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	h := app.NewHandler(
		app.Deps{
			Catalog: store,
			Baskets: basket.NewStore(),
		},
		app.HTTPDeps{
			Log:               log,
			Service:           service,
			Registry:          reg,
			MetricsEnabled:    cfg.MetricsEnabled,
			MetricsToken:      cfg.MetricsToken,
			BasketWriteLimit:  cfg.BasketWriteLimit,
			BasketWriteWindow: cfg.BasketWriteWindow,
			TrustForwardedFor: cfg.TrustForwardedFor,
		},
	)

	if cfg.MetricsEnabled && cfg.MetricsToken == "" {
		log.Warn("metrics enabled without METRICS_TOKEN; /metrics will refuse every request")
	}

	return kit.RunHTTPServer(c.Context, cfg.Addr(), h, log, cfg.ShutdownTimeout)
}

func printProducts(c *cli.Context) error {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return err
	}

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	store, err := loadCatalog(c.Context, cfg, log)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(store.List())
}

// loadCatalog freezes the catalog once, before any request can read it.
func loadCatalog(ctx context.Context, cfg config.Config, log *zap.Logger) (*catalog.MemStore, error) {
	if cfg.CatalogDSN == "" {
		store := catalog.NewSeededStore()
		log.Info("catalog seeded", zap.Int("products", store.Len()))
		return store, nil
	}

	db, err := catalog.OpenPostgres(ctx, cfg.CatalogDSN)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	store, err := catalog.LoadStore(ctx, catalog.NewPostgresSource(db))
	if err != nil {
		return nil, err
	}
	log.Info("catalog loaded from postgres", zap.Int("products", store.Len()))
	return store, nil
}
