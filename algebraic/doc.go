/*
Package algebraic implements algebraic extension numbers over a ring.

An extension number carries square roots symbolically. Sqrt1 represents

	a + b·√c

and Sqrt2 represents values with two root generators e and f

	a + b·√e + c·√f + d·√(e·f)

Sqrt3 is a Sqrt2 built over Sqrt1, i.e. its coefficients and generators are
themselves single-root numbers. This is the algebraic degree which bisectors
of segment sites produce.

Signs and comparisons of extension numbers are decided symbolically from the
coefficients, by isolating the irrational part and squaring once its sign is
known. No square root is ever evaluated to compare two values, so comparisons
are exact whenever the base ring is exact.

Conversion into a field type (Sqrt1ToField, Sqrt2ToField, Sqrt3ToField) is
the only place where roots are evaluated. The result is tagged with
number.Exactness: field types lacking an in-type square root fall back to
float64 square roots, which is reported as number.Approximate.

Generators of a value are fixed at construction. Values built from plain ring
elements carry no generator and combine with anything. Combining two values
whose generators differ is a programmer error and panics with an error
wrapping ErrGeneratorMismatch; Compatible allows checking beforehand.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package algebraic

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'svd'
func tracer() tracing.Trace {
	return tracing.Select("svd")
}

func assert(condition bool, err error, msg string) {
	if !condition {
		panic(errors.Wrap(err, msg))
	}
}
