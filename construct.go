package svd

import "github.com/npillmayer/svd/number"

// SupportingLine returns the line through the endpoints of s, oriented such
// that its positive side is to the left of s (turning the direction of s
// counter-clockwise by 90°).
//
// A degenerate segment yields a degenerate line.
func SupportingLine[R number.Ring[R]](s Segment[R]) Line[R] {
	return lineOf(SupportingLineCoefficients(s))
}

// SupportingLineCoefficients returns the coefficients of SupportingLine(s):
//
//	a = y_source − y_target
//	b = x_target − x_source
//	c = x_source·y_target − x_target·y_source
func SupportingLineCoefficients[R number.Ring[R]](s Segment[R]) (a, b, c R) {
	src, trg := s.Source, s.Target
	a = src.Y.Sub(trg.Y)
	b = trg.X.Sub(src.X)
	c = src.X.Mul(trg.Y).Sub(trg.X.Mul(src.Y))
	return
}

// Projection returns the orthogonal projection of p onto l, with weight
// a² + b².
func Projection[R number.Ring[R]](l Line[R], p Point[R]) HPoint[R] {
	l.mustBeProper("Projection")
	a, b, c := l.A(), l.B(), l.C()
	ab := a.Mul(b)
	hx := number.Square(b).Mul(p.X).Sub(ab.Mul(p.Y)).Sub(a.Mul(c))
	hy := number.Square(a).Mul(p.Y).Sub(ab.Mul(p.X)).Sub(b.Mul(c))
	return hpointOf(hx, hy, l.normSquared())
}

// Midpoint returns the midpoint of p and q, with weight 2.
func Midpoint[R number.Ring[R]](p, q Point[R]) HPoint[R] {
	return hpointOf(p.X.Add(q.X), p.Y.Add(q.Y), p.X.FromInt64(2))
}

// MidpointH returns the midpoint of two homogeneous points, with weight
// 2·hw1·hw2.
func MidpointH[R number.Ring[R]](p, q HPoint[R]) HPoint[R] {
	pw, qw := p.HW(), q.HW()
	hx := p.hx.Mul(qw).Add(q.hx.Mul(pw))
	hy := p.hy.Mul(qw).Add(q.hy.Mul(pw))
	hw := pw.FromInt64(2).Mul(pw).Mul(qw)
	return hpointOf(hx, hy, hw)
}

// Perpendicular returns the line through p perpendicular to l. Its positive
// side lies in the direction of l's rotated normal (−b, a).
func Perpendicular[R number.Ring[R]](l Line[R], p Point[R]) Line[R] {
	l.mustBeProper("Perpendicular")
	a, b := l.A(), l.B()
	return lineOf(b.Neg(), a, b.Mul(p.X).Sub(a.Mul(p.Y)))
}

// Opposite returns l with reversed orientation.
func Opposite[R number.Ring[R]](l Line[R]) Line[R] {
	return lineOf(l.A().Neg(), l.b.Neg(), l.c.Neg())
}

// SquaredDistance returns the squared Euclidean distance of p and q.
func SquaredDistance[R number.Ring[R]](p, q Point[R]) R {
	return number.Square(p.X.Sub(q.X)).Add(number.Square(p.Y.Sub(q.Y)))
}

// SquaredDistanceToLine returns the squared distance of p to l as a pair
// (numerator, denominator) = ((a·x + b·y + c)², a² + b²). Compare such pairs
// by cross-multiplication.
func SquaredDistanceToLine[R number.Ring[R]](p Point[R], l Line[R]) (num, den R) {
	l.mustBeProper("SquaredDistanceToLine")
	return number.Square(l.eval(p)), l.normSquared()
}
