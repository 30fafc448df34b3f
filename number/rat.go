package number

import (
	"math"
	"math/big"

	"modernc.org/mathutil"
)

// ratSqrtBits is the number of binary digits approximated square roots carry
// beyond the integer part of √(num·den).
const ratSqrtBits = 64

var ratZero = new(big.Rat)

// Rat is an exact rational field element. It is the field of fractions of
// Int.
//
// Rat does not compute square roots exactly: HasExactSqrt is false. Perfect
// squares are still recognized by ExactSqrt.
type Rat struct {
	v *big.Rat
}

// NewRat creates the rational a/b. b must not be 0.
func NewRat(a, b int64) Rat {
	assert(b != 0, ErrDivisionByZero, "NewRat")
	return Rat{v: big.NewRat(a, b)}
}

// RatFromBig creates a Rat from a big.Rat. The argument is copied.
func RatFromBig(r *big.Rat) Rat {
	if r == nil {
		return Rat{}
	}
	return Rat{v: new(big.Rat).Set(r)}
}

func (x Rat) big() *big.Rat {
	if x.v == nil {
		return ratZero
	}
	return x.v
}

// Big returns a copy of x as a big.Rat.
func (x Rat) Big() *big.Rat {
	return new(big.Rat).Set(x.big())
}

// Add returns x+y.
func (x Rat) Add(y Rat) Rat {
	return Rat{v: new(big.Rat).Add(x.big(), y.big())}
}

// Sub returns x-y.
func (x Rat) Sub(y Rat) Rat {
	return Rat{v: new(big.Rat).Sub(x.big(), y.big())}
}

// Mul returns x*y.
func (x Rat) Mul(y Rat) Rat {
	return Rat{v: new(big.Rat).Mul(x.big(), y.big())}
}

// Quo returns x/y. y must not be 0.
func (x Rat) Quo(y Rat) Rat {
	assert(y.Sign() != 0, ErrDivisionByZero, "Rat.Quo")
	return Rat{v: new(big.Rat).Quo(x.big(), y.big())}
}

// Neg returns -x.
func (x Rat) Neg() Rat {
	return Rat{v: new(big.Rat).Neg(x.big())}
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Rat) Sign() int {
	return x.big().Sign()
}

// Cmp compares x and y.
func (x Rat) Cmp(y Rat) int {
	return x.big().Cmp(y.big())
}

// FromInt64 returns n as a Rat.
func (Rat) FromInt64(n int64) Rat {
	return Rat{v: new(big.Rat).SetInt64(n)}
}

// FromFloat64 returns the exact rational value of f. f must be finite.
func (Rat) FromFloat64(f float64) Rat {
	assert(!math.IsNaN(f) && !math.IsInf(f, 0), ErrNotFinite, "Rat.FromFloat64")
	return Rat{v: new(big.Rat).SetFloat64(f)}
}

// Lift converts an Int into a Rat.
func (Rat) Lift(n Int) Rat {
	return Rat{v: new(big.Rat).SetInt(n.big())}
}

// Float64 returns the float64 value nearest to x.
func (x Rat) Float64() float64 {
	f, _ := x.big().Float64()
	return f
}

func (x Rat) String() string {
	return x.big().RatString()
}

// HasExactSqrt is false for Rat.
func (Rat) HasExactSqrt() bool {
	return false
}

// ExactSqrt returns the square root of x if numerator and denominator are
// perfect squares.
func (x Rat) ExactSqrt() (Rat, bool) {
	if x.Sign() < 0 {
		return Rat{}, false
	}
	num, ok := isqrt(x.big().Num())
	if !ok {
		return Rat{}, false
	}
	den, ok := isqrt(x.big().Denom())
	if !ok {
		return Rat{}, false
	}
	return Rat{v: new(big.Rat).SetFrac(num, den)}, true
}

// Sqrt returns the square root of x. The result is exact for perfect
// squares and an approximation as by ApproxSqrt otherwise.
func (x Rat) Sqrt() Rat {
	assert(x.Sign() >= 0, ErrNegativeSqrt, "Rat.Sqrt")
	if r, ok := x.ExactSqrt(); ok {
		return r
	}
	tracer().Debugf("approximating square root of %s", x)
	return x.ApproxSqrt()
}

// ApproxSqrt returns a rational approximation of √x with a relative error
// below 2⁻⁶⁴, for any magnitude of x. x must not be negative.
//
// With x = p/q, √x = √(p·q)/q, and the integer root of p·q·4^k is taken
// exactly.
func (x Rat) ApproxSqrt() Rat {
	assert(x.Sign() >= 0, ErrNegativeSqrt, "Rat.ApproxSqrt")
	if x.Sign() == 0 {
		return Rat{}
	}
	num, den := x.big().Num(), x.big().Denom()
	n := new(big.Int).Mul(num, den)
	n.Lsh(n, 2*ratSqrtBits)
	r := mathutil.SqrtBig(n)
	d := new(big.Int).Lsh(den, ratSqrtBits)
	return Rat{v: new(big.Rat).SetFrac(r, d)}
}
