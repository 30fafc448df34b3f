package svd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/svd/algebraic"
	"github.com/npillmayer/svd/number"
)

// Kernel binds a ring type R to a field type F built over it. It provides
// the operations which leave the ring: logical coordinates of homogeneous
// points and conversions of extension numbers.
//
// Constructions and predicates stay within the ring and are plain functions
// of this package.
type Kernel[R number.Ring[R], F number.Field[F, R]] struct {
	config Config
}

// NewKernel creates a kernel for the ring/field pair R, F.
//
//	k, err := svd.NewKernel[number.Int, number.Rat](svd.Config{Strict: true})
func NewKernel[R number.Ring[R], F number.Field[F, R]](config Config) (*Kernel[R, F], error) {
	var f F
	if err := config.validate(f.HasExactSqrt()); err != nil {
		return nil, err
	}
	k := &Kernel[R, F]{config: config.normalized()}
	T().Debugf("svd kernel created, field has exact sqrt = %v, strict = %v",
		f.HasExactSqrt(), k.config.Strict)
	return k, nil
}

// HasExactSqrt reports whether the field type computes square roots within
// the type. If it does not, conversions of extension numbers may be
// approximate.
func (k *Kernel[R, F]) HasExactSqrt() bool {
	var f F
	return f.HasExactSqrt()
}

// Config returns the kernel's configuration.
func (k *Kernel[R, F]) Config() Config {
	return k.config
}

// X returns the logical x-coordinate hx/hw of p.
func (k *Kernel[R, F]) X(p HPoint[R]) F {
	var f F
	return f.Lift(p.hx).Quo(f.Lift(p.HW()))
}

// Y returns the logical y-coordinate hy/hw of p.
func (k *Kernel[R, F]) Y(p HPoint[R]) F {
	var f F
	return f.Lift(p.hy).Quo(f.Lift(p.HW()))
}

// ToField1 converts a single-root number into the field type.
//
// The exactness tag tells whether a square root had to be approximated.
// A strict kernel returns ErrInexactConversion instead of an approximated
// value.
func (k *Kernel[R, F]) ToField1(x algebraic.Sqrt1[R]) (F, number.Exactness, error) {
	v, exactness := algebraic.Sqrt1ToField[F](x)
	return k.settle(v, exactness, x)
}

// ToField2 converts a two-root number into the field type.
func (k *Kernel[R, F]) ToField2(x algebraic.Sqrt2[R]) (F, number.Exactness, error) {
	v, exactness := algebraic.Sqrt2ToField[F](x)
	return k.settle(v, exactness, x)
}

// ToField3 converts a two-root number over single-root numbers into the
// field type.
func (k *Kernel[R, F]) ToField3(x algebraic.Sqrt3[R]) (F, number.Exactness, error) {
	v, exactness := algebraic.Sqrt3ToField[F](x)
	return k.settle(v, exactness, x)
}

func (k *Kernel[R, F]) settle(v F, exactness number.Exactness, x fmt.Stringer) (F, number.Exactness, error) {
	if exactness == number.Exact {
		return v, exactness, nil
	}
	if k.config.Strict {
		var zero F
		return zero, exactness, errors.Wrapf(ErrInexactConversion, "%s", x)
	}
	T().Debugf("approximate conversion %s ≈ %s", x, v)
	return v, exactness, nil
}
