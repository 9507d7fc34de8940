package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in cents. It marshals as a decimal number (29.99) so
// persisted blobs keep the storefront's price format.
type Money int64

const (
	// MaxMoney is used as an open upper bound for price filters.
	MaxMoney = Money(math.MaxInt64)
	// MaxPrice is the highest unit price a product may carry (10,000,000.00).
	// With MaxQuantity it keeps line and cart totals far from overflow.
	MaxPrice Money = 1_000_000_000
)

// MoneyFromFloat rounds a decimal amount to the nearest cent.
func MoneyFromFloat(v float64) Money {
	return Money(math.Round(v * 100))
}

// ParseMoney parses a decimal string such as "29.99".
func ParseMoney(s string) (Money, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse money %q: %w", s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("parse money %q: not a finite number", s)
	}
	// float64(math.MaxInt64) rounds up to 2^63, so >= rejects everything
	// that would not convert back to an int64.
	if math.Abs(math.Round(f*100)) >= math.MaxInt64 {
		return 0, fmt.Errorf("parse money %q: out of range", s)
	}
	return MoneyFromFloat(f), nil
}

// Float returns the amount in currency units.
func (m Money) Float() float64 {
	return float64(m) / 100
}

// Times multiplies a unit price by a quantity.
func (m Money) Times(qty int) Money {
	return m * Money(qty)
}

func (m Money) String() string {
	sign := ""
	v := uint64(m)
	if m < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	parsed, err := ParseMoney(strings.Trim(s, `"`))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
