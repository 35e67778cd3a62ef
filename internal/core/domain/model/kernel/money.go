package kernel

import (
	"fmt"
	"math"

	"marketplace/internal/pkg/errs"
)

// Money is an amount in minor currency units (e.g. cents). It is never negative.
type Money int64

func NewMoney(minor int64) (Money, error) {
	if minor < 0 {
		return 0, errs.NewValueIsOutOfRangeError("amount", minor, 0, int64(math.MaxInt64))
	}
	return Money(minor), nil
}

func (m Money) Int64() int64 {
	return int64(m)
}

// Add returns the sum; operands are non-negative so the sum is too.
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub returns m - other floored at zero.
func (m Money) Sub(other Money) Money {
	if other >= m {
		return 0
	}
	return m - other
}

// Mul multiplies by a non-negative quantity.
func (m Money) Mul(qty int) Money {
	if qty <= 0 {
		return 0
	}
	return m * Money(qty)
}

// Percent returns round(m * pct / 100) using half-up rounding.
func (m Money) Percent(pct int64) Money {
	if pct <= 0 {
		return 0
	}
	return Money((int64(m)*pct + 50) / 100)
}

// Min returns the smaller of two amounts.
func (m Money) Min(other Money) Money {
	if other < m {
		return other
	}
	return m
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", int64(m)/100, int64(m)%100)
}
