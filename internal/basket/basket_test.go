package basket

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Bootique/internal/money"
)

func TestNewOrderItem_TotalIsPriceTimesQuantity(t *testing.T) {
	it := NewOrderItem("1", 2, money.MustParse("989.99"))

	assert.Equal(t, "1", it.ProductID())
	assert.Equal(t, 2, it.Quantity())
	assert.Equal(t, "989.99", it.Price().String())
	assert.Equal(t, "1979.98", it.TotalPrice().String())
}

func TestNewOrderItem_QuantityNotValidated(t *testing.T) {
	assert.True(t, NewOrderItem("4", 0, money.MustParse("6.95")).TotalPrice().IsZero())
	assert.Equal(t, "-6.95", NewOrderItem("4", -1, money.MustParse("6.95")).TotalPrice().String())
}

func TestOrderItem_JSON(t *testing.T) {
	raw, err := json.Marshal(NewOrderItem("3", 3, money.MustParse("19.95")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"productId":"3","quantity":3,"price":19.95,"totalPrice":59.85}`, string(raw))

	var it OrderItem
	require.NoError(t, json.Unmarshal([]byte(`{"productId":"2","quantity":2,"price":699.99,"totalPrice":1}`), &it))
	assert.Equal(t, "1399.98", it.TotalPrice().String(), "total is derived, not trusted")
}

func TestBasket_EmptyTotalIsZero(t *testing.T) {
	var b Basket
	assert.True(t, b.Total().IsZero())
	assert.Empty(t, b.Items())
	assert.Zero(t, b.Len())

	raw, err := json.Marshal(b.View())
	require.NoError(t, err)
	assert.JSONEq(t, `{"orderItems":[],"totalPrice":0}`, string(raw))
}

func TestBasket_TotalIsSumOfLines(t *testing.T) {
	lines := []OrderItem{
		NewOrderItem("1", 2, money.MustParse("989.99")),
		NewOrderItem("3", 1, money.MustParse("19.95")),
		NewOrderItem("4", 7, money.MustParse("6.95")),
		NewOrderItem("3", 1, money.MustParse("19.95")),
	}

	var b Basket
	want := money.Zero
	for _, it := range lines {
		b.Add(it)
		want = want.Add(it.Price().Mul(it.Quantity()))
		assert.True(t, want.Equal(b.Total()), "want=%s got=%s", want, b.Total())
	}
	assert.Equal(t, "2068.53", b.Total().String())
}

func TestBasket_PreservesOrderWithoutDedupe(t *testing.T) {
	var b Basket
	b.Add(NewOrderItem("2", 1, money.MustParse("699.99")))
	b.Add(NewOrderItem("1", 1, money.MustParse("989.99")))
	b.Add(NewOrderItem("2", 1, money.MustParse("699.99")))

	items := b.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []string{"2", "1", "2"}, []string{items[0].ProductID(), items[1].ProductID(), items[2].ProductID()})
}

func TestBasket_ItemsIsSnapshot(t *testing.T) {
	var b Basket
	b.Add(NewOrderItem("1", 1, money.MustParse("989.99")))

	snap := b.Items()
	view := b.View()

	b.Add(NewOrderItem("4", 1, money.MustParse("6.95")))

	assert.Len(t, snap, 1)
	assert.Len(t, view.OrderItems, 1)
	assert.Equal(t, "989.99", view.TotalPrice.String())

	snap[0] = NewOrderItem("x", 100, money.MustParse("1"))
	assert.Equal(t, "1", b.Items()[0].ProductID())
	assert.Equal(t, 2, b.Len())
}

func TestBasket_ConcurrentAddsAreNotLost(t *testing.T) {
	const writers, perWriter = 20, 50
	price := money.MustParse("0.01")

	var b Basket
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				b.Add(NewOrderItem("p", 1, price))
				v := b.View()
				if !price.Mul(len(v.OrderItems)).Equal(v.TotalPrice) {
					t.Errorf("torn view: %d items, total %s", len(v.OrderItems), v.TotalPrice)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, b.Len())
	assert.Equal(t, "10", b.Total().String())
}
