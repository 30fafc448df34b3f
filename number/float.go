package number

import (
	"math"
	"strconv"
)

// Float is a float64 scalar. It serves as both ring and field type of an
// inexact kernel. Predicates evaluated with Float are subject to rounding.
type Float float64

// Add returns x+y.
func (x Float) Add(y Float) Float { return x + y }

// Sub returns x-y.
func (x Float) Sub(y Float) Float { return x - y }

// Mul returns x*y.
func (x Float) Mul(y Float) Float { return x * y }

// Neg returns -x.
func (x Float) Neg() Float { return -x }

// Quo returns x/y. y must not be 0.
func (x Float) Quo(y Float) Float {
	assert(y != 0, ErrDivisionByZero, "Float.Quo")
	return x / y
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Float) Sign() int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Cmp compares x and y.
func (x Float) Cmp(y Float) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// FromInt64 returns n as a Float.
func (Float) FromInt64(n int64) Float { return Float(n) }

// FromFloat64 returns f as a Float. f must be finite.
func (Float) FromFloat64(f float64) Float {
	assert(!math.IsNaN(f) && !math.IsInf(f, 0), ErrNotFinite, "Float.FromFloat64")
	return Float(f)
}

// Lift is the identity, Float is its own ring.
func (Float) Lift(x Float) Float { return x }

// Float64 returns x as a float64.
func (x Float) Float64() float64 { return float64(x) }

func (x Float) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}

// HasExactSqrt is false for Float: its arithmetic is rounded.
func (Float) HasExactSqrt() bool { return false }

// Sqrt returns the correctly rounded square root of x.
func (x Float) Sqrt() Float {
	assert(x >= 0, ErrNegativeSqrt, "Float.Sqrt")
	return Float(math.Sqrt(float64(x)))
}
