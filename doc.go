/*
Package svd offers an exact predicate kernel for Voronoi diagrams of points
and line segments in the plane.

Exact predicates

A Voronoi diagram is a combinatorial structure, and every branching decision
while building it is a sign: on which side of a line a point lies, which of two
sites is closer. A single sign flipped by floating-point rounding corrupts the
diagram. This package answers those questions with algebraic exactness
whenever the scalar type used is exact.

The kernel is parameterized over a ring type R (exact +, -, *) and, where
coordinates have to be divided or roots be taken, a field type F built over R.
Package number provides ready-made scalar types, package algebraic provides
numbers carrying symbolic square roots.

Division is avoided by working with lines in the form a·x + b·y + c = 0 and with
homogeneous points (hx, hy, hw) denoting (hx/hw, hy/hw). Distances to lines
are returned as numerator/denominator pairs and compared by
cross-multiplication.

	l := svd.SupportingLine(seg)
	side := svd.OrientedSideOfLine(l, p)

The constructions and predicates follow the basic predicates of the segment
Voronoi diagram as described by M. Karavelas (Robust and Efficient
Implementation of Segment Voronoi Diagrams). Higher predicates of the diagram
are built on top of these by client code.

Contract violations

Degenerate lines (a = b = 0) and homogeneous points of weight 0 are rejected by
the constructors NewLine and NewHPoint. If a degenerate line nevertheless
reaches a construction or predicate, the call panics with an error wrapping
ErrDegenerateLine. All other operations are total.

Concurrency

All types are immutable values. Every function is safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package svd

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// KernelError is an error type for the svd module
type KernelError string

func (e KernelError) Error() string {
	return string(e)
}

// ErrDegenerateLine is flagged for lines with a = b = 0. Predicates and
// constructions panic with it.
const ErrDegenerateLine = KernelError("degenerate line: a and b are both zero")

// ErrZeroWeight is flagged for homogeneous points with hw = 0.
const ErrZeroWeight = KernelError("homogeneous point with zero weight")

// ErrInexactConversion is flagged by a strict kernel whenever a conversion
// into the field type had to approximate a square root.
const ErrInexactConversion = KernelError("conversion is not exact")

// ErrInvalidConfig is flagged for kernel configurations which cannot be
// satisfied.
const ErrInvalidConfig = KernelError("invalid kernel configuration")

func assert(condition bool, err error, msg string) {
	if !condition {
		panic(errors.Wrap(err, msg))
	}
}
