package svd

import (
	"math/rand/v2"
	"testing"

	"github.com/npillmayer/svd/number"
	"github.com/stretchr/testify/require"
)

func randomLine(rnd *rand.Rand) Line[number.Int] {
	for {
		a, b, c := rnd.Int64N(41)-20, rnd.Int64N(41)-20, rnd.Int64N(201)-100
		if a != 0 || b != 0 {
			return lineOf(number.NewInt(a), number.NewInt(b), number.NewInt(c))
		}
	}
}

func randomPoint(rnd *rand.Rand) Point[number.Int] {
	return ipt(rnd.Int64N(201)-100, rnd.Int64N(201)-100)
}

func TestSupportingLine(t *testing.T) {
	teardown := traceTo(t)
	defer teardown()
	//
	l := SupportingLine(iseg(1, 1, 4, 3))
	t.Logf("supporting line = %s", l)
	// a = 1-3, b = 4-1, c = 1·3 - 4·1
	if l.A().Cmp(number.NewInt(-2)) != 0 || l.B().Cmp(number.NewInt(3)) != 0 ||
		l.C().Cmp(number.NewInt(-1)) != 0 {
		t.Fatalf("expected line (-2,3,-1), have %s", l)
	}
	if side := OrientedSideOfLine(l, ipt(0, 5)); side != OnPositiveSide {
		t.Errorf("point left of segment should be on positive side, is %s", side)
	}
	if side := OrientedSideOfLine(l, ipt(5, 0)); side != OnNegativeSide {
		t.Errorf("point right of segment should be on negative side, is %s", side)
	}
}

func TestSupportingLineProperties(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 1000; i++ {
		s := Seg(randomPoint(rnd), randomPoint(rnd))
		if s.IsDegenerate() {
			continue
		}
		l := SupportingLine(s)
		require.Equal(t, OnBoundary, OrientedSideOfLine(l, s.Source), "source of %s", s)
		require.Equal(t, OnBoundary, OrientedSideOfLine(l, s.Target), "target of %s", s)
		// source + direction turned left
		dx, dy := s.Target.X.Sub(s.Source.X), s.Target.Y.Sub(s.Source.Y)
		left := Pt(s.Source.X.Sub(dy), s.Source.Y.Add(dx))
		require.Equal(t, OnPositiveSide, OrientedSideOfLine(l, left), "left of %s", s)
	}
}

func TestProjection(t *testing.T) {
	k, err := NewKernel[number.Int, number.Rat](Config{})
	if err != nil {
		t.Fatal(err)
	}
	// x + y - 2 = 0; projection of origin is (1,1)
	p := Projection(iline(t, 1, 1, -2), ipt(0, 0))
	if p.HW().Cmp(number.NewInt(2)) != 0 {
		t.Errorf("expected weight a²+b² = 2, have %s", p.HW())
	}
	if k.X(p).Cmp(number.NewRat(1, 1)) != 0 || k.Y(p).Cmp(number.NewRat(1, 1)) != 0 {
		t.Errorf("expected projection (1,1), have %s", p)
	}
	expectPanic(t, ErrDegenerateLine, func() {
		Projection(SupportingLine(iseg(2, 2, 2, 2)), ipt(1, 1))
	})
}

func TestPerpendicularThroughProjection(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 1000; i++ {
		l, p := randomLine(rnd), randomPoint(rnd)
		proj := Projection(l, p)
		perp := Perpendicular(l, p)
		require.Equal(t, OnBoundary, OrientedSideOfLineH(perp, proj), "%s, %s", l, p)
		require.Equal(t, OnBoundary, OrientedSideOfLineH(l, proj), "%s, %s", l, p)
		require.Equal(t, OnBoundary, OrientedSideOfLine(perp, p), "%s, %s", l, p)
	}
}

func TestMidpoint(t *testing.T) {
	k, err := NewKernel[number.Int, number.Rat](Config{})
	if err != nil {
		t.Fatal(err)
	}
	m := Midpoint(ipt(1, -4), ipt(6, 3))
	if k.X(m).Cmp(number.NewRat(7, 2)) != 0 || k.Y(m).Cmp(number.NewRat(-1, 2)) != 0 {
		t.Errorf("midpoint of (1,-4), (6,3) should be (7/2,-1/2), is %s", m)
	}
	// (6,-9,3) = (2,-3) and (25,10,5) = (5,2)
	for _, c := range []struct{ p, q HPoint[number.Int] }{
		{ihpt(t, 6, -9, 3), ihpt(t, 25, 10, 5)},
		{ihpt(t, -6, 9, -3), ihpt(t, 25, 10, 5)},
		{ihpt(t, 6, -9, 3), ihpt(t, -25, -10, -5)},
	} {
		m := MidpointH(c.p, c.q)
		if k.X(m).Cmp(number.NewRat(7, 2)) != 0 || k.Y(m).Cmp(number.NewRat(-1, 2)) != 0 {
			t.Errorf("midpoint of %s, %s should be (7/2,-1/2), is %s", c.p, c.q, m)
		}
	}
}

func TestMidpointProperties(t *testing.T) {
	k, _ := NewKernel[number.Int, number.Rat](Config{})
	rnd := rand.New(rand.NewPCG(13, 17))
	weight := func() int64 {
		w := rnd.Int64N(9) + 1
		if rnd.IntN(2) == 0 {
			return -w
		}
		return w
	}
	for i := 0; i < 500; i++ {
		p := ihpt(t, rnd.Int64N(101)-50, rnd.Int64N(101)-50, weight())
		q := ihpt(t, rnd.Int64N(101)-50, rnd.Int64N(101)-50, weight())
		m := MidpointH(p, q)
		two := number.NewRat(2, 1)
		require.Equal(t, 0, k.X(m).Cmp(k.X(p).Add(k.X(q)).Quo(two)))
		require.Equal(t, 0, k.Y(m).Cmp(k.Y(p).Add(k.Y(q)).Quo(two)))
	}
}

func TestOppositeLine(t *testing.T) {
	rnd := rand.New(rand.NewPCG(19, 23))
	for i := 0; i < 1000; i++ {
		l, p := randomLine(rnd), randomPoint(rnd)
		side := OrientedSideOfLine(l, p)
		require.Equal(t, side.Opposite(), OrientedSideOfLine(Opposite(l), p))
	}
	l := Opposite(Line[number.Int]{})
	if l.A().Cmp(number.NewInt(-1)) != 0 {
		t.Errorf("opposite of placeholder line should be -x = 0, is %s", l)
	}
}

func TestSquaredDistances(t *testing.T) {
	if d := SquaredDistance(ipt(1, 2), ipt(4, 6)); d.Cmp(number.NewInt(25)) != 0 {
		t.Errorf("squared distance should be 25, is %s", d)
	}
	// 3x + 4y - 5 = 0 has distance 1 to the origin
	num, den := SquaredDistanceToLine(ipt(0, 0), iline(t, 3, 4, -5))
	if num.Cmp(number.NewInt(25)) != 0 || den.Cmp(number.NewInt(25)) != 0 {
		t.Errorf("expected 25/25, have %s/%s", num, den)
	}
}
