/*
Package number provides the scalar number types the svd kernel is
parameterized over.

A kernel is built from two kinds of scalars. Ring types are exact and offer
+, -, * and sign/comparison, but no division. Field types add division and,
depending on the type, a square root computed within the type itself. Whether
a field type computes square roots itself is a constant of the type, queried
by HasExactSqrt. Client code never switches on runtime data to decide this.

Concrete types

	Int      exact ring over math/big integers
	Rat      exact field over math/big rationals, lifts Int; no square root
	Float    float64, its own ring and field; no exact square root
	Decimal  fixed-precision decimal field, lifts Int; square root in-type

The zero value of every type is the number 0.

Ring and field operations are total, with the exception of programmer-contract
violations (division by zero, square root of a negative number, conversion of
non-finite floats). These panic with an error wrapping one of the package's
sentinel errors.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package number

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
