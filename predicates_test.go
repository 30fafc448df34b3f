package svd

import (
	"math/rand/v2"
	"testing"

	"github.com/npillmayer/svd/number"
	"github.com/stretchr/testify/require"
)

func TestOrientedSideOfHomogeneousPoint(t *testing.T) {
	teardown := traceTo(t)
	defer teardown()
	//
	l := iline(t, 1, 0, -1) // x = 1, positive for x > 1
	for _, c := range []struct {
		p    HPoint[number.Int]
		side OrientedSide
	}{
		{ihpt(t, 2, 2, 1), OnPositiveSide},
		{ihpt(t, -2, -2, -1), OnPositiveSide},
		{ihpt(t, 1, 7, 2), OnNegativeSide},
		{ihpt(t, -1, -7, -2), OnNegativeSide},
		{ihpt(t, 3, 0, 3), OnBoundary},
		{ihpt(t, -3, 5, -3), OnBoundary},
	} {
		if side := OrientedSideOfLineH(l, c.p); side != c.side {
			t.Errorf("%s should be on %s side of %s, is %s", c.p, c.side, l, side)
		}
	}
}

func TestOrientedSideAgreesForHomogenized(t *testing.T) {
	rnd := rand.New(rand.NewPCG(29, 31))
	for i := 0; i < 1000; i++ {
		l, p := randomLine(rnd), randomPoint(rnd)
		require.Equal(t, OrientedSideOfLine(l, p), OrientedSideOfLineH(l, Homogenize(p)))
	}
}

func TestIsOnPositiveHalfspace(t *testing.T) {
	l := SupportingLine(iseg(0, 0, 1, 0)) // y = 0, positive above
	for _, c := range []struct {
		name     string
		s        Segment[number.Int]
		positive bool
	}{
		{"fully positive", iseg(0, 1, 2, 3), true},
		{"fully negative", iseg(0, -1, 2, -3), false},
		{"boundary source, positive target", iseg(0, 0, 1, 1), true},
		{"positive source, boundary target", iseg(1, 1, 0, 0), true},
		{"boundary source, negative target", iseg(0, 0, 1, -1), false},
		{"negative source, boundary target", iseg(1, -1, 0, 0), false},
		{"crossing", iseg(0, 1, 0, -1), false},
		{"on line", iseg(0, 0, 5, 0), false},
	} {
		if IsOnPositiveHalfspace(l, c.s) != c.positive {
			t.Errorf("%s: expected %v for %s", c.name, c.positive, c.s)
		}
	}
}

func TestCompareSquaredDistancesToLineAntisymmetric(t *testing.T) {
	rnd := rand.New(rand.NewPCG(37, 41))
	for i := 0; i < 1000; i++ {
		l, p, q := randomLine(rnd), randomPoint(rnd), randomPoint(rnd)
		c := CompareSquaredDistancesToLine(l, p, q)
		require.Equal(t, c.Opposite(), CompareSquaredDistancesToLine(l, q, p))
		require.Equal(t, Equal, CompareSquaredDistancesToLine(l, p, p))
	}
}

func lineToRat(l Line[number.Int]) Line[number.Rat] {
	var r number.Rat
	return lineOf(r.Lift(l.A()), r.Lift(l.B()), r.Lift(l.C()))
}

// Points reflected at a line are equidistant to it. Reflection needs a
// division, so this runs over the rationals.
func TestCompareSquaredDistancesOfReflectedPoints(t *testing.T) {
	k, _ := NewKernel[number.Int, number.Rat](Config{})
	rnd := rand.New(rand.NewPCG(43, 47))
	var r number.Rat
	two := r.FromInt64(2)
	for i := 0; i < 500; i++ {
		l, p := randomLine(rnd), randomPoint(rnd)
		proj := Projection(l, p)
		pr := Pt(r.Lift(p.X), r.Lift(p.Y))
		q := Pt(two.Mul(k.X(proj)).Sub(pr.X), two.Mul(k.Y(proj)).Sub(pr.Y))
		lr := lineToRat(l)
		require.Equal(t, Equal, CompareSquaredDistancesToLine(lr, pr, q), "%s, %s, %s", l, pr, q)
		if OrientedSideOfLine(lr, pr) == OnBoundary {
			continue
		}
		// move p away from the line along its normal
		side := r.FromInt64(int64(OrientedSideOfLine(lr, pr)))
		farther := Pt(pr.X.Add(side.Mul(lr.A())), pr.Y.Add(side.Mul(lr.B())))
		require.Equal(t, Larger, CompareSquaredDistancesToLine(lr, farther, q))
		require.Equal(t, Smaller, CompareSquaredDistancesToLine(lr, q, farther))
	}
}

func TestCompareSquaredDistancesToLines(t *testing.T) {
	p := ipt(0, 0)
	l1 := iline(t, 1, 0, -2) // distance 2
	l2 := iline(t, 3, 4, -5) // distance 1
	if c := CompareSquaredDistancesToLines(p, l1, l2); c != Larger {
		t.Errorf("expected larger, have %s", c)
	}
	if c := CompareSquaredDistancesToLines(p, l2, l1); c != Smaller {
		t.Errorf("expected smaller, have %s", c)
	}
	scaled := iline(t, 2, 0, -4)
	if c := CompareSquaredDistancesToLines(p, l1, scaled); c != Equal {
		t.Errorf("scaling a line must not change distances, have %s", c)
	}
	if c := CompareSquaredDistancesToLines(p, l1, Opposite(l1)); c != Equal {
		t.Errorf("orientation must not change distances, have %s", c)
	}
}

func TestPredicatesRejectDegenerateLines(t *testing.T) {
	degenerate := SupportingLine(iseg(3, 3, 3, 3))
	l := iline(t, 1, 1, 0)
	p := ipt(1, 2)
	expectPanic(t, ErrDegenerateLine, func() { OrientedSideOfLine(degenerate, p) })
	expectPanic(t, ErrDegenerateLine, func() { OrientedSideOfLineH(degenerate, Homogenize(p)) })
	expectPanic(t, ErrDegenerateLine, func() { CompareSquaredDistancesToLine(degenerate, p, p) })
	expectPanic(t, ErrDegenerateLine, func() { CompareSquaredDistancesToLines(p, l, degenerate) })
	expectPanic(t, ErrDegenerateLine, func() { IsOnPositiveHalfspace(degenerate, iseg(0, 0, 1, 1)) })
	expectPanic(t, ErrDegenerateLine, func() { Perpendicular(degenerate, p) })
	expectPanic(t, ErrDegenerateLine, func() { SquaredDistanceToLine(p, degenerate) })
}
