package svd

import "github.com/npillmayer/svd/number"

// CompareSquaredDistancesToLine compares the distances of p and q to l. The
// common denominator a² + b² cancels out.
func CompareSquaredDistancesToLine[R number.Ring[R]](l Line[R], p, q Point[R]) Comparison {
	l.mustBeProper("CompareSquaredDistancesToLine")
	return compare(number.Square(l.eval(p)), number.Square(l.eval(q)))
}

// CompareSquaredDistancesToLines compares the distance of p to l1 with the
// distance of p to l2, cross-multiplying by the denominators.
func CompareSquaredDistancesToLines[R number.Ring[R]](p Point[R], l1, l2 Line[R]) Comparison {
	num1, den1 := SquaredDistanceToLine(p, l1)
	num2, den2 := SquaredDistanceToLine(p, l2)
	return compare(num1.Mul(den2), num2.Mul(den1))
}

// OrientedSideOfLine returns the side of l on which p lies.
func OrientedSideOfLine[R number.Ring[R]](l Line[R], p Point[R]) OrientedSide {
	l.mustBeProper("OrientedSideOfLine")
	return sideOf(l.eval(p).Sign())
}

// OrientedSideOfLineH returns the side of l on which the homogeneous point p
// lies. A negative weight is taken into account, the result always refers to
// the point (hx/hw, hy/hw).
func OrientedSideOfLineH[R number.Ring[R]](l Line[R], p HPoint[R]) OrientedSide {
	l.mustBeProper("OrientedSideOfLineH")
	hw := p.HW()
	v := l.A().Mul(p.hx).Add(l.b.Mul(p.hy)).Add(l.c.Mul(hw))
	return sideOf(v.Sign() * hw.Sign())
}

// IsOnPositiveHalfspace reports whether s is not contained in the closed
// negative halfspace of l, i.e. one endpoint is on the positive side and the
// other one is not on the negative side.
func IsOnPositiveHalfspace[R number.Ring[R]](l Line[R], s Segment[R]) bool {
	os1 := OrientedSideOfLine(l, s.Source)
	os2 := OrientedSideOfLine(l, s.Target)
	return (os1 == OnPositiveSide && os2 != OnNegativeSide) ||
		(os1 != OnNegativeSide && os2 == OnPositiveSide)
}
