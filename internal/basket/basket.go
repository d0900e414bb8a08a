package basket

import (
	"sync"

	"Bootique/internal/money"
)

// Basket is an append-only list of order items for one session.
type Basket struct {
	mu    sync.RWMutex
	items []OrderItem
}

// View is a consistent snapshot of a basket.
type View struct {
	OrderItems []OrderItem  `json:"orderItems"`
	TotalPrice money.Amount `json:"totalPrice"`
}

func (b *Basket) Add(item OrderItem) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, item)
}

// Items returns a copy; later appends do not show up in it.
func (b *Basket) Items() []OrderItem {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.copyItems()
}

func (b *Basket) Total() money.Amount {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return sumItems(b.items)
}

func (b *Basket) View() View {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return View{
		OrderItems: b.copyItems(),
		TotalPrice: sumItems(b.items),
	}
}

func (b *Basket) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}

func (b *Basket) copyItems() []OrderItem {
	out := make([]OrderItem, len(b.items))
	copy(out, b.items)
	return out
}

func sumItems(items []OrderItem) money.Amount {
	total := money.Zero
	for _, it := range items {
		total = total.Add(it.TotalPrice())
	}
	return total
}
