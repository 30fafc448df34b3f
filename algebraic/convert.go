package algebraic

import (
	"math"

	"github.com/npillmayer/svd/number"
)

// rootable is the part of a field type needed to take square roots.
type rootable[F any] interface {
	Sign() int
	Sqrt() F
	HasExactSqrt() bool
	Float64() float64
	FromFloat64(float64) F
	String() string
}

// fieldSqrt takes the square root of a field value. Types computing roots
// in-type are trusted; all others get an exact result only for perfect
// squares. Otherwise the type's own approximation is used if it has one, and a
// float64 approximation as a last resort.
func fieldSqrt[F rootable[F]](x F) (F, number.Exactness) {
	assert(x.Sign() >= 0, ErrNegativeRadicand, "field square root")
	if x.HasExactSqrt() {
		return x.Sqrt(), number.Exact
	}
	if ps, ok := any(x).(number.PerfectSquarer[F]); ok {
		if r, ok := ps.ExactSqrt(); ok {
			return r, number.Exact
		}
	}
	if as, ok := any(x).(number.ApproxSquarer[F]); ok {
		tracer().Debugf("approximating √%s in-type", x)
		return as.ApproxSqrt(), number.Approximate
	}
	tracer().Debugf("approximating √%s through float64", x)
	return x.FromFloat64(math.Sqrt(x.Float64())), number.Approximate
}

// Sqrt1ToField converts x into field type F, usually called as
//
//	v, exactness := algebraic.Sqrt1ToField[number.Rat](x)
//
// The result is tagged number.Approximate if a square root had to be
// approximated.
func Sqrt1ToField[F number.Field[F, R], R number.Ring[R]](x Sqrt1[R]) (F, number.Exactness) {
	var zero F
	a := zero.Lift(x.a)
	if !x.gen || x.b.Sign() == 0 {
		return a, number.Exact
	}
	sqrtC, exactness := fieldSqrt(zero.Lift(x.c))
	return a.Add(zero.Lift(x.b).Mul(sqrtC)), exactness
}

// Sqrt2ToField converts x into field type F.
func Sqrt2ToField[F number.Field[F, R], R number.Ring[R]](x Sqrt2[R]) (F, number.Exactness) {
	var zero F
	a := zero.Lift(x.a)
	if !x.gen {
		return a, number.Exact
	}
	sqrtE, ex1 := fieldSqrt(zero.Lift(x.e))
	sqrtF, ex2 := fieldSqrt(zero.Lift(x.f))
	v := a.Add(zero.Lift(x.b).Mul(sqrtE)).
		Add(zero.Lift(x.c).Mul(sqrtF)).
		Add(zero.Lift(x.d).Mul(sqrtE).Mul(sqrtF))
	return v, ex1.Combine(ex2)
}

// Sqrt3ToField converts x into field type F. The single-root coefficients
// and generators are converted first, then the roots of the generators are
// taken within F.
func Sqrt3ToField[F number.Field[F, R], R number.Ring[R]](x Sqrt3[R]) (F, number.Exactness) {
	a, exactness := Sqrt1ToField[F](x.a)
	if !x.gen {
		return a, exactness
	}
	conv := func(y Sqrt1[R]) F {
		v, ex := Sqrt1ToField[F](y)
		exactness = exactness.Combine(ex)
		return v
	}
	// generators are non-negative by construction; a negative field value can
	// only stem from an approximated inner root
	radicand := func(y Sqrt1[R]) F {
		v := conv(y)
		if v.Sign() < 0 {
			exactness = number.Approximate
			return v.FromInt64(0)
		}
		return v
	}
	b, c, d := conv(x.b), conv(x.c), conv(x.d)
	sqrtE, ex1 := fieldSqrt(radicand(x.e))
	sqrtF, ex2 := fieldSqrt(radicand(x.f))
	sqrtEF := sqrtE.Mul(sqrtF)
	v := a.Add(b.Mul(sqrtE)).Add(c.Mul(sqrtF)).Add(d.Mul(sqrtEF))
	return v, exactness.Combine(ex1).Combine(ex2)
}
