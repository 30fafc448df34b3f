package number

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
	"modernc.org/mathutil"
)

// fftThresholdBits is the operand size above which products are computed
// with FFT multiplication.
const fftThresholdBits = 1 << 16

var bigZero = new(big.Int)

// Int is an exact integer ring element of arbitrary size.
//
// An Int created by
//
//	Int{}
//
// is a valid zero. Ints are immutable: the underlying big.Int is never
// modified after construction.
type Int struct {
	v *big.Int
}

// NewInt creates an Int from an int64.
func NewInt(n int64) Int {
	return Int{v: big.NewInt(n)}
}

// IntFromBig creates an Int from a big.Int. The argument is copied.
func IntFromBig(b *big.Int) Int {
	if b == nil {
		return Int{}
	}
	return Int{v: new(big.Int).Set(b)}
}

func (x Int) big() *big.Int {
	if x.v == nil {
		return bigZero
	}
	return x.v
}

// Big returns a copy of x as a big.Int.
func (x Int) Big() *big.Int {
	return new(big.Int).Set(x.big())
}

// Add returns x+y.
func (x Int) Add(y Int) Int {
	return Int{v: new(big.Int).Add(x.big(), y.big())}
}

// Sub returns x-y.
func (x Int) Sub(y Int) Int {
	return Int{v: new(big.Int).Sub(x.big(), y.big())}
}

// Mul returns x*y. Very large operands are multiplied using FFT.
func (x Int) Mul(y Int) Int {
	a, b := x.big(), y.big()
	if a.BitLen() > fftThresholdBits && b.BitLen() > fftThresholdBits {
		return Int{v: bigfft.Mul(a, b)}
	}
	return Int{v: new(big.Int).Mul(a, b)}
}

// Neg returns -x.
func (x Int) Neg() Int {
	return Int{v: new(big.Int).Neg(x.big())}
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Int) Sign() int {
	return x.big().Sign()
}

// Cmp compares x and y.
func (x Int) Cmp(y Int) int {
	return x.big().Cmp(y.big())
}

// FromInt64 returns n as an Int.
func (Int) FromInt64(n int64) Int {
	return NewInt(n)
}

// Float64 returns the float64 value nearest to x.
func (x Int) Float64() float64 {
	f, _ := new(big.Float).SetInt(x.big()).Float64()
	return f
}

func (x Int) String() string {
	return x.big().String()
}

// ExactSqrt returns the square root of x if x is a perfect square.
func (x Int) ExactSqrt() (Int, bool) {
	r, ok := isqrt(x.big())
	if !ok {
		return Int{}, false
	}
	return Int{v: r}, true
}

// isqrt returns the integer square root of n and whether it is exact.
func isqrt(n *big.Int) (*big.Int, bool) {
	if n.Sign() < 0 {
		return nil, false
	}
	if n.Sign() == 0 {
		return new(big.Int), true
	}
	r := mathutil.SqrtBig(n)
	if new(big.Int).Mul(r, r).Cmp(n) != 0 {
		return nil, false
	}
	return r, true
}
