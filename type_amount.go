package ledger

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents a monetary value without a currency. The ledger keeps
// all amounts of one account in the user's single implicit currency, so the
// currency only appears at formatting time.
type Amount struct {
	value decimal.Decimal
}

func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	panic("unreachable")
}

// ParseAmount parses a decimal string like "1234.50" into an Amount.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{value: d}, nil
}

func (a Amount) Add(b Amount) Amount  { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount  { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount          { return Amount{value: a.value.Neg()} }
func (a Amount) IsZero() bool         { return a.value.IsZero() }
func (a Amount) IsNegative() bool     { return a.value.IsNegative() }
func (a Amount) Equal(b Amount) bool  { return a.value.Equal(b.value) }
func (a Amount) Cmp(b Amount) int     { return a.value.Cmp(b.value) }
func (a Amount) LessThan(b Amount) bool { return a.value.LessThan(b.value) }

// String returns the plain decimal representation, e.g. "2000" or "50.5".
func (a Amount) String() string { return a.value.String() }

// Format renders the amount in the given ISO currency, e.g. "¥2,000.00"
// for CNY. Unknown currency codes fall back to the plain decimal form.
func (a Amount) Format(currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return a.value.String()
	}
	minor := a.value.Shift(int32(cur.Fraction))
	return money.New(minor.IntPart(), currency).Display()
}

// MarshalJSON encodes the amount as a bare JSON number, the form legacy
// exports use.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalJSON accepts both a JSON number and a quoted decimal string.
// The original device UI exported whatever the form field held, so both
// forms exist in the wild.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		a.value = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	a.value = d
	return nil
}
