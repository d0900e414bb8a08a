// Package money holds the exact-decimal amount used for prices and totals.
package money

import (
	"database/sql/driver"

	"github.com/shopspring/decimal"
)

// Amount is an immutable decimal quantity. The zero value is 0.
type Amount struct {
	d decimal.Decimal
}

var Zero = Amount{}

func New(d decimal.Decimal) Amount {
	return Amount{d: d}
}

func FromCents(cents int64) Amount {
	return Amount{d: decimal.New(cents, -2)}
}

func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{d: d}, nil
}

func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

// Mul multiplies by an integer quantity without rounding.
func (a Amount) Mul(quantity int) Amount {
	return Amount{d: a.d.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Equal compares by value, so 6.95 equals 6.950.
func (a Amount) Equal(b Amount) bool { return a.d.Equal(b.d) }

func (a Amount) Cmp(b Amount) int { return a.d.Cmp(b.d) }

func (a Amount) IsZero() bool { return a.d.IsZero() }

func (a Amount) IsNegative() bool { return a.d.IsNegative() }

func (a Amount) Decimal() decimal.Decimal { return a.d }

func (a Amount) String() string { return a.d.String() }

// MarshalJSON writes the amount as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.d.String()), nil
}

// UnmarshalJSON accepts both 12.5 and "12.5".
func (a *Amount) UnmarshalJSON(b []byte) error {
	return a.d.UnmarshalJSON(b)
}

func (a *Amount) Scan(value any) error {
	return a.d.Scan(value)
}

func (a Amount) Value() (driver.Value, error) {
	return a.d.Value()
}
