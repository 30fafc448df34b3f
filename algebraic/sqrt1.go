package algebraic

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/svd/number"
)

// Sqrt1 is an exact number a + b·√c over ring R, c ≥ 0.
//
// A Sqrt1 created by
//
//	Sqrt1[R]{}
//
// is a valid zero without a root generator. Sqrt1 itself satisfies
// number.Ring, which allows nesting it as base ring of Sqrt2.
type Sqrt1[R number.Ring[R]] struct {
	a, b, c R
	gen     bool // c is a root generator
}

// NewSqrt1 creates a + b·√c. c must not be negative.
func NewSqrt1[R number.Ring[R]](a, b, c R) (Sqrt1[R], error) {
	if c.Sign() < 0 {
		return Sqrt1[R]{}, errors.Wrapf(ErrNegativeRadicand, "√%s", c)
	}
	return Sqrt1[R]{a: a, b: b, c: c, gen: true}, nil
}

// Lift1 creates a Sqrt1 for ring element a, without a root generator.
func Lift1[R number.Ring[R]](a R) Sqrt1[R] {
	return Sqrt1[R]{a: a}
}

// A returns the rational part.
func (x Sqrt1[R]) A() R { return x.a }

// B returns the coefficient of the root.
func (x Sqrt1[R]) B() R { return x.b }

// C returns the radicand, the root generator.
func (x Sqrt1[R]) C() R { return x.c }

// Generators returns the number of root generators x carries, 0 or 1.
func (x Sqrt1[R]) Generators() int {
	if x.gen {
		return 1
	}
	return 0
}

// Compatible reports whether x and y may be combined arithmetically.
func (x Sqrt1[R]) Compatible(y Sqrt1[R]) bool {
	return !x.gen || !y.gen || sameValue(x.c, y.c)
}

func (x Sqrt1[R]) radicand(y Sqrt1[R], op string) (R, bool) {
	switch {
	case !x.gen:
		return y.c, y.gen
	case !y.gen:
		return x.c, true
	}
	assert(sameValue(x.c, y.c), ErrGeneratorMismatch, op)
	return x.c, true
}

// Add returns x+y.
func (x Sqrt1[R]) Add(y Sqrt1[R]) Sqrt1[R] {
	c, gen := x.radicand(y, "Sqrt1.Add")
	return Sqrt1[R]{a: x.a.Add(y.a), b: x.b.Add(y.b), c: c, gen: gen}
}

// Sub returns x-y.
func (x Sqrt1[R]) Sub(y Sqrt1[R]) Sqrt1[R] {
	c, gen := x.radicand(y, "Sqrt1.Sub")
	return Sqrt1[R]{a: x.a.Sub(y.a), b: x.b.Sub(y.b), c: c, gen: gen}
}

// Mul returns x*y. The product of the two root terms contributes
// b1·b2·c to the rational part.
func (x Sqrt1[R]) Mul(y Sqrt1[R]) Sqrt1[R] {
	c, gen := x.radicand(y, "Sqrt1.Mul")
	a := x.a.Mul(y.a)
	if gen {
		a = a.Add(x.b.Mul(y.b).Mul(c))
	}
	b := x.a.Mul(y.b).Add(x.b.Mul(y.a))
	return Sqrt1[R]{a: a, b: b, c: c, gen: gen}
}

// Neg returns -x.
func (x Sqrt1[R]) Neg() Sqrt1[R] {
	return Sqrt1[R]{a: x.a.Neg(), b: x.b.Neg(), c: x.c, gen: x.gen}
}

// Sign returns the exact sign of x.
//
// If a and b·√c agree in sign (or one of them vanishes), that sign is the
// result. Otherwise the term with the larger square dominates:
// sign(x) = sign(a)·sign(a² − b²·c).
func (x Sqrt1[R]) Sign() int {
	sa, sb := x.a.Sign(), x.b.Sign()
	if !x.gen || sb == 0 || x.c.Sign() == 0 {
		return sa
	}
	if sa == 0 || sa == sb {
		return sb
	}
	d := number.Square(x.a).Sub(number.Square(x.b).Mul(x.c))
	return sa * d.Sign()
}

// Cmp compares x and y exactly.
func (x Sqrt1[R]) Cmp(y Sqrt1[R]) int {
	return x.Sub(y).Sign()
}

// FromInt64 returns n as a Sqrt1 without root generator.
func (Sqrt1[R]) FromInt64(n int64) Sqrt1[R] {
	var zero R
	return Sqrt1[R]{a: zero.FromInt64(n)}
}

// Float64 returns an approximation of x.
func (x Sqrt1[R]) Float64() float64 {
	if !x.gen {
		return x.a.Float64()
	}
	return x.a.Float64() + x.b.Float64()*math.Sqrt(x.c.Float64())
}

func (x Sqrt1[R]) String() string {
	if !x.gen {
		return x.a.String()
	}
	return fmt.Sprintf("(%s + %s·√%s)", x.a, x.b, x.c)
}

// sameValue reports whether x and y are equal. Extension numbers over
// different root generators never compare equal here, as comparing them
// arithmetically would mix generators.
func sameValue[R number.Ring[R]](x, y R) bool {
	if c, ok := any(x).(interface{ Compatible(R) bool }); ok && !c.Compatible(y) {
		return false
	}
	return x.Cmp(y) == 0
}
