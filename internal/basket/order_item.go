package basket

import (
	"encoding/json"

	"Bootique/internal/money"
)

// OrderItem is one basket line. The price is the unit price captured when
// the line was added, not a live reference to the catalog.
type OrderItem struct {
	productID  string
	quantity   int
	price      money.Amount
	totalPrice money.Amount
}

func NewOrderItem(productID string, quantity int, price money.Amount) OrderItem {
	return OrderItem{
		productID:  productID,
		quantity:   quantity,
		price:      price,
		totalPrice: price.Mul(quantity),
	}
}

func (it OrderItem) ProductID() string        { return it.productID }
func (it OrderItem) Quantity() int            { return it.quantity }
func (it OrderItem) Price() money.Amount      { return it.price }
func (it OrderItem) TotalPrice() money.Amount { return it.totalPrice }

type orderItemJSON struct {
	ProductID  string       `json:"productId"`
	Quantity   int          `json:"quantity"`
	Price      money.Amount `json:"price"`
	TotalPrice money.Amount `json:"totalPrice"`
}

func (it OrderItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderItemJSON{
		ProductID:  it.productID,
		Quantity:   it.quantity,
		Price:      it.price,
		TotalPrice: it.totalPrice,
	})
}

// UnmarshalJSON rebuilds the line from productId, quantity and price and
// recomputes totalPrice.
func (it *OrderItem) UnmarshalJSON(b []byte) error {
	var v orderItemJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*it = NewOrderItem(v.ProductID, v.Quantity, v.Price)
	return nil
}
