package svd

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/svd/number"
)

// Point is a point in the plane with ring coordinates.
type Point[R number.Ring[R]] struct {
	X, Y R
}

// Pt is a shortcut for creating a point.
func Pt[R number.Ring[R]](x, y R) Point[R] {
	return Point[R]{X: x, Y: y}
}

func (p Point[R]) String() string {
	return fmt.Sprintf("(%s,%s)", p.X, p.Y)
}

// Segment is a directed line segment from Source to Target.
type Segment[R number.Ring[R]] struct {
	Source, Target Point[R]
}

// Seg is a shortcut for creating a segment.
func Seg[R number.Ring[R]](source, target Point[R]) Segment[R] {
	return Segment[R]{Source: source, Target: target}
}

// IsDegenerate reports whether source and target coincide.
func (s Segment[R]) IsDegenerate() bool {
	return s.Source.X.Cmp(s.Target.X) == 0 && s.Source.Y.Cmp(s.Target.Y) == 0
}

func (s Segment[R]) String() string {
	return fmt.Sprintf("[%s→%s]", s.Source, s.Target)
}

// --- Lines -----------------------------------------------------------------

// Line is an oriented line {(x,y) : a·x + b·y + c = 0}. Points with
// a·x + b·y + c > 0 are on its positive side.
//
// A line created by
//
//	Line[R]{}
//
// is the placeholder line 1·x + 0·y + 0 = 0. Real lines are derived from
// segments or other lines, or created by NewLine.
type Line[R number.Ring[R]] struct {
	a, b, c R
	set     bool
}

// NewLine creates the line a·x + b·y + c = 0. a and b must not both be zero.
func NewLine[R number.Ring[R]](a, b, c R) (Line[R], error) {
	if a.Sign() == 0 && b.Sign() == 0 {
		return Line[R]{}, errors.Wrapf(ErrDegenerateLine, "%s·x + %s·y + %s", a, b, c)
	}
	return lineOf(a, b, c), nil
}

func lineOf[R number.Ring[R]](a, b, c R) Line[R] {
	return Line[R]{a: a, b: b, c: c, set: true}
}

// A returns the coefficient of x.
func (l Line[R]) A() R {
	if !l.set {
		return l.a.FromInt64(1)
	}
	return l.a
}

// B returns the coefficient of y.
func (l Line[R]) B() R { return l.b }

// C returns the constant coefficient.
func (l Line[R]) C() R { return l.c }

// IsDegenerate reports whether a and b are both zero.
func (l Line[R]) IsDegenerate() bool {
	return l.A().Sign() == 0 && l.b.Sign() == 0
}

// eval returns a·x + b·y + c.
func (l Line[R]) eval(p Point[R]) R {
	return l.A().Mul(p.X).Add(l.b.Mul(p.Y)).Add(l.c)
}

// normSquared returns a² + b².
func (l Line[R]) normSquared() R {
	return number.Square(l.A()).Add(number.Square(l.b))
}

func (l Line[R]) mustBeProper(op string) {
	assert(!l.IsDegenerate(), ErrDegenerateLine, op)
}

func (l Line[R]) String() string {
	return fmt.Sprintf("{%s·x + %s·y + %s = 0}", l.A(), l.b, l.c)
}

// --- Homogeneous points ----------------------------------------------------

// HPoint is a point in homogeneous coordinates (hx, hy, hw), hw ≠ 0,
// denoting the point (hx/hw, hy/hw). It allows deriving points from lines
// without dividing.
//
// The zero value is the origin (0, 0, 1).
type HPoint[R number.Ring[R]] struct {
	hx, hy, hw R
	set        bool
}

// NewHPoint creates the homogeneous point (hx, hy, hw). hw must not be zero.
func NewHPoint[R number.Ring[R]](hx, hy, hw R) (HPoint[R], error) {
	if hw.Sign() == 0 {
		return HPoint[R]{}, errors.Wrapf(ErrZeroWeight, "(%s, %s, %s)", hx, hy, hw)
	}
	return hpointOf(hx, hy, hw), nil
}

func hpointOf[R number.Ring[R]](hx, hy, hw R) HPoint[R] {
	assert(hw.Sign() != 0, ErrZeroWeight, "homogeneous point")
	return HPoint[R]{hx: hx, hy: hy, hw: hw, set: true}
}

// Homogenize returns p with weight 1.
func Homogenize[R number.Ring[R]](p Point[R]) HPoint[R] {
	return HPoint[R]{hx: p.X, hy: p.Y, hw: p.X.FromInt64(1), set: true}
}

// HX returns the homogeneous x-coordinate.
func (p HPoint[R]) HX() R { return p.hx }

// HY returns the homogeneous y-coordinate.
func (p HPoint[R]) HY() R { return p.hy }

// HW returns the weight.
func (p HPoint[R]) HW() R {
	if !p.set {
		return p.hw.FromInt64(1)
	}
	return p.hw
}

func (p HPoint[R]) String() string {
	return fmt.Sprintf("(%s:%s:%s)", p.hx, p.hy, p.HW())
}
