// Package config reads process settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Prefix for environment variables. BOOTIQUE_PORT wins over PORT.
const Prefix = "bootique"

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// CatalogDSN points at a Postgres products table. Empty means the
	// built-in seed catalog.
	CatalogDSN string `envconfig:"CATALOG_DSN"`

	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	MetricsToken   string `envconfig:"METRICS_TOKEN"`

	// BasketWriteLimit caps item additions per client IP per window; 0 disables.
	BasketWriteLimit  int           `envconfig:"BASKET_WRITE_LIMIT" default:"0"`
	BasketWriteWindow time.Duration `envconfig:"BASKET_WRITE_WINDOW" default:"1m"`

	// TrustForwardedFor keys the write limit on X-Forwarded-For. Set it only
	// behind a proxy that rewrites that header.
	TrustForwardedFor bool `envconfig:"TRUST_FORWARDED_FOR" default:"false"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load applies the env files that exist, then reads the environment.
// Variables already set are not overridden by the files.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if f == "" {
			continue
		}
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, errors.Wrapf(err, "load env file %s", f)
		}
	}

	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return Config{}, errors.Wrap(err, "read environment")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	if c.BasketWriteLimit < 0 {
		return errors.Errorf("basket write limit must be >= 0, got %d", c.BasketWriteLimit)
	}
	if c.BasketWriteLimit > 0 && c.BasketWriteWindow <= 0 {
		return errors.New("basket write window must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	return nil
}

func (c Config) Addr() string { return ":" + c.Port }
