package algebraic

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/svd/number"
)

// Sqrt2 is an exact number a + b·√e + c·√f + d·√(e·f) over ring R, with
// root generators e, f ≥ 0.
//
// The zero value is a valid zero without root generators.
type Sqrt2[R number.Ring[R]] struct {
	a, b, c, d R
	e, f       R
	gen        bool // e and f are root generators
}

// Sqrt3 is a two-generator extension over single-root numbers.
type Sqrt3[R number.Ring[R]] = Sqrt2[Sqrt1[R]]

// NewSqrt2 creates a + b·√e + c·√f + d·√(e·f). e and f must not be negative.
func NewSqrt2[R number.Ring[R]](a, b, c, d, e, f R) (Sqrt2[R], error) {
	if e.Sign() < 0 || f.Sign() < 0 {
		return Sqrt2[R]{}, errors.Wrapf(ErrNegativeRadicand, "√%s, √%s", e, f)
	}
	return Sqrt2[R]{a: a, b: b, c: c, d: d, e: e, f: f, gen: true}, nil
}

// NewSqrt3 creates a Sqrt3 from single-root coefficients and generators.
func NewSqrt3[R number.Ring[R]](a, b, c, d, e, f Sqrt1[R]) (Sqrt3[R], error) {
	return NewSqrt2(a, b, c, d, e, f)
}

// Lift2 creates a Sqrt2 for ring element a, without root generators.
func Lift2[R number.Ring[R]](a R) Sqrt2[R] {
	return Sqrt2[R]{a: a}
}

// A returns the rational part.
func (x Sqrt2[R]) A() R { return x.a }

// B returns the coefficient of √e.
func (x Sqrt2[R]) B() R { return x.b }

// C returns the coefficient of √f.
func (x Sqrt2[R]) C() R { return x.c }

// D returns the coefficient of √(e·f).
func (x Sqrt2[R]) D() R { return x.d }

// E returns the first root generator.
func (x Sqrt2[R]) E() R { return x.e }

// F returns the second root generator.
func (x Sqrt2[R]) F() R { return x.f }

// Generators returns the number of root generators x carries, 0 or 2.
func (x Sqrt2[R]) Generators() int {
	if x.gen {
		return 2
	}
	return 0
}

// Compatible reports whether x and y may be combined arithmetically.
func (x Sqrt2[R]) Compatible(y Sqrt2[R]) bool {
	return !x.gen || !y.gen || (sameValue(x.e, y.e) && sameValue(x.f, y.f))
}

func (x Sqrt2[R]) generators(y Sqrt2[R], op string) (e, f R, gen bool) {
	switch {
	case !x.gen:
		return y.e, y.f, y.gen
	case !y.gen:
		return x.e, x.f, true
	}
	assert(sameValue(x.e, y.e) && sameValue(x.f, y.f), ErrGeneratorMismatch, op)
	return x.e, x.f, true
}

// Add returns x+y.
func (x Sqrt2[R]) Add(y Sqrt2[R]) Sqrt2[R] {
	e, f, gen := x.generators(y, "Sqrt2.Add")
	return Sqrt2[R]{
		a: x.a.Add(y.a), b: x.b.Add(y.b), c: x.c.Add(y.c), d: x.d.Add(y.d),
		e: e, f: f, gen: gen,
	}
}

// Sub returns x-y.
func (x Sqrt2[R]) Sub(y Sqrt2[R]) Sqrt2[R] {
	e, f, gen := x.generators(y, "Sqrt2.Sub")
	return Sqrt2[R]{
		a: x.a.Sub(y.a), b: x.b.Sub(y.b), c: x.c.Sub(y.c), d: x.d.Sub(y.d),
		e: e, f: f, gen: gen,
	}
}

// Mul returns x*y. With E=√e and F=√f, products of root terms reduce by
// E² = e and F² = f, keeping the result within the family.
func (x Sqrt2[R]) Mul(y Sqrt2[R]) Sqrt2[R] {
	e, f, gen := x.generators(y, "Sqrt2.Mul")
	if !gen {
		return Sqrt2[R]{a: x.a.Mul(y.a)}
	}
	ef := e.Mul(f)
	a := x.a.Mul(y.a).
		Add(x.b.Mul(y.b).Mul(e)).
		Add(x.c.Mul(y.c).Mul(f)).
		Add(x.d.Mul(y.d).Mul(ef))
	b := x.a.Mul(y.b).
		Add(x.b.Mul(y.a)).
		Add(x.c.Mul(y.d).Mul(f)).
		Add(x.d.Mul(y.c).Mul(f))
	c := x.a.Mul(y.c).
		Add(x.c.Mul(y.a)).
		Add(x.b.Mul(y.d).Mul(e)).
		Add(x.d.Mul(y.b).Mul(e))
	d := x.a.Mul(y.d).
		Add(x.d.Mul(y.a)).
		Add(x.b.Mul(y.c)).
		Add(x.c.Mul(y.b))
	return Sqrt2[R]{a: a, b: b, c: c, d: d, e: e, f: f, gen: true}
}

// Neg returns -x.
func (x Sqrt2[R]) Neg() Sqrt2[R] {
	return Sqrt2[R]{
		a: x.a.Neg(), b: x.b.Neg(), c: x.c.Neg(), d: x.d.Neg(),
		e: x.e, f: x.f, gen: x.gen,
	}
}

// Sign returns the exact sign of x.
//
// x is split into P + Q·√f with P = a + b·√e and Q = c + d·√e. P and Q are
// single-root numbers over generator e, and the single-root sign rule applies
// with P, Q in place of a, b.
func (x Sqrt2[R]) Sign() int {
	if !x.gen {
		return x.a.Sign()
	}
	p := Sqrt1[R]{a: x.a, b: x.b, c: x.e, gen: true}
	q := Sqrt1[R]{a: x.c, b: x.d, c: x.e, gen: true}
	sp, sq := p.Sign(), q.Sign()
	if sq == 0 || x.f.Sign() == 0 {
		return sp
	}
	if sp == 0 || sp == sq {
		return sq
	}
	fe := Sqrt1[R]{a: x.f, c: x.e, gen: true}
	t := p.Mul(p).Sub(q.Mul(q).Mul(fe))
	return sp * t.Sign()
}

// Cmp compares x and y exactly.
func (x Sqrt2[R]) Cmp(y Sqrt2[R]) int {
	return x.Sub(y).Sign()
}

// FromInt64 returns n as a Sqrt2 without root generators.
func (Sqrt2[R]) FromInt64(n int64) Sqrt2[R] {
	var zero R
	return Sqrt2[R]{a: zero.FromInt64(n)}
}

// Float64 returns an approximation of x.
func (x Sqrt2[R]) Float64() float64 {
	if !x.gen {
		return x.a.Float64()
	}
	se, sf := math.Sqrt(x.e.Float64()), math.Sqrt(x.f.Float64())
	return x.a.Float64() + x.b.Float64()*se + x.c.Float64()*sf + x.d.Float64()*se*sf
}

func (x Sqrt2[R]) String() string {
	if !x.gen {
		return x.a.String()
	}
	return fmt.Sprintf("(%s + %s·√%s + %s·√%s + %s·√(%s·%s))",
		x.a, x.b, x.e, x.c, x.f, x.d, x.e, x.f)
}
