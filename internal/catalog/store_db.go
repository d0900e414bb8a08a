package catalog

import (
	"context"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

// PostgresSource reads the product table once at startup. The rows are
// frozen into a MemStore; the catalog is never queried per request.
type PostgresSource struct {
	db *sqlx.DB
}

func NewPostgresSource(db *sqlx.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// OpenPostgres opens a pgx-backed pool and checks that it answers.
func OpenPostgres(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open catalog db")
	}

	err = withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return db.PingContext(ctx)
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping catalog db")
	}
	return db, nil
}

func (s *PostgresSource) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresSource) Load(ctx context.Context) ([]Product, error) {
	out := make([]Product, 0, 16)

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.SelectContext(ctx, &out, `
			SELECT id, title, brand, list_price
			FROM products
			ORDER BY id ASC
		`)
	})
	if err != nil {
		return nil, errors.Wrap(err, "load products")
	}

	for _, p := range out {
		if p.ListPrice.IsNegative() {
			return nil, errors.Errorf("product %s has negative list price %s", p.ID, p.ListPrice)
		}
	}
	return out, nil
}

// LoadStore builds a MemStore from the product table.
func LoadStore(ctx context.Context, src *PostgresSource) (*MemStore, error) {
	products, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewMemStore(products...), nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
