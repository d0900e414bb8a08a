package basket

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"Bootique/internal/catalog"
)

var ErrProductNotFound = errors.New("product not found")

// Catalog resolves product IDs to their current list price.
type Catalog interface {
	Get(id string) (catalog.Product, bool)
}

type Service struct {
	Baskets *Store
	Catalog Catalog
	Metrics *Metrics
	Log     *zap.Logger
}

func (s *Service) Basket(sessionID string) *Basket {
	return s.Baskets.GetOrCreate(sessionID)
}

// NewSession mints a session ID and creates its empty basket.
func (s *Service) NewSession() (string, *Basket) {
	id := "b_" + uuid.NewString()
	return id, s.Baskets.GetOrCreate(id)
}

// AddItem appends quantity units of productID at the catalog's current list
// price. An unknown product returns ErrProductNotFound and leaves the basket
// untouched. Quantity is taken as-is.
func (s *Service) AddItem(sessionID, productID string, quantity int) (*Basket, error) {
	b := s.Baskets.GetOrCreate(sessionID)

	p, ok := s.Catalog.Get(productID)
	if !ok {
		s.Metrics.productNotFound()
		return nil, fmt.Errorf("%w: %q", ErrProductNotFound, productID)
	}

	b.Add(NewOrderItem(p.ID, quantity, p.ListPrice))
	s.Metrics.itemAdded()

	if s.Log != nil {
		s.Log.Debug("order item added",
			zap.String("session_id", sessionID),
			zap.String("product_id", p.ID),
			zap.Int("quantity", quantity),
			zap.Stringer("price", p.ListPrice),
		)
	}
	return b, nil
}
