package svd

import (
	"math"
	"math/big"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/svd/algebraic"
	"github.com/npillmayer/svd/number"
)

func sqrt1(t *testing.T, a, b, c int64) algebraic.Sqrt1[number.Int] {
	t.Helper()
	x, err := algebraic.NewSqrt1(number.NewInt(a), number.NewInt(b), number.NewInt(c))
	if err != nil {
		t.Fatal(err)
	}
	return x
}

func TestKernelConfig(t *testing.T) {
	teardown := traceTo(t)
	defer teardown()
	//
	_, err := NewKernel[number.Int, number.Rat](Config{RequireExactSqrt: true})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Rat kernel must not satisfy RequireExactSqrt, err = %v", err)
	}
	k, err := NewKernel[number.Int, number.Decimal](Config{RequireExactSqrt: true})
	if err != nil {
		t.Fatal(err)
	}
	if !k.HasExactSqrt() || !k.Config().Strict {
		t.Errorf("decimal kernel should have exact sqrt and be strict")
	}
}

func TestKernelToFieldExact(t *testing.T) {
	k, err := NewKernel[number.Int, number.Decimal](Config{Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	v, exactness, err := k.ToField1(sqrt1(t, 1, 2, 3))
	if err != nil || exactness != number.Exact {
		t.Fatalf("decimal conversion should be exact, err = %v", err)
	}
	// 1+2√3 at 400 bits; the decimal is rounded to DecimalPrecision digits,
	// so a tolerance of 1e-60 covers its rounding.
	ref := new(big.Float).SetPrec(400).SetInt64(3)
	ref.Sqrt(ref).Mul(ref, big.NewFloat(2).SetPrec(400)).Add(ref, big.NewFloat(1).SetPrec(400))
	got, ok := new(big.Float).SetPrec(400).SetString(v.String())
	if !ok {
		t.Fatalf("cannot parse %s", v)
	}
	diff := new(big.Float).Sub(got, ref)
	if diff.Abs(diff).Cmp(big.NewFloat(1e-60)) > 0 {
		t.Errorf("1+2√3 = %s, off by %g", v, diff)
	}
}

func TestKernelToFieldApproximate(t *testing.T) {
	teardown := traceTo(t)
	defer teardown()
	//
	lenient, _ := NewKernel[number.Int, number.Rat](Config{})
	v, exactness, err := lenient.ToField1(sqrt1(t, 1, 2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if exactness != number.Approximate {
		t.Errorf("precision loss must be reported")
	}
	if math.Abs(v.Float64()-(1+2*math.Sqrt(3))) > 1e-12 {
		t.Errorf("1+2√3 ≈ %s, too far off", v)
	}
	strict, _ := NewKernel[number.Int, number.Rat](Config{Strict: true})
	if _, _, err := strict.ToField1(sqrt1(t, 1, 2, 3)); !errors.Is(err, ErrInexactConversion) {
		t.Errorf("strict kernel should refuse approximations, err = %v", err)
	}
	v, exactness, err = strict.ToField1(sqrt1(t, 1, 2, 9))
	if err != nil || exactness != number.Exact || v.Cmp(number.NewRat(7, 1)) != 0 {
		t.Errorf("1+2√9 should convert exactly to 7, is %s (%v)", v, err)
	}
}

func TestKernelToField2And3(t *testing.T) {
	k, _ := NewKernel[number.Int, number.Decimal](Config{Strict: true})
	n := []number.Int{number.NewInt(0), number.NewInt(1), number.NewInt(-1),
		number.NewInt(0), number.NewInt(2), number.NewInt(8)}
	x, err := algebraic.NewSqrt2(n[0], n[1], n[2], n[3], n[4], n[5])
	if err != nil {
		t.Fatal(err)
	}
	// √2 - √8 = -√2
	v, _, err := k.ToField2(x)
	if err != nil || math.Abs(v.Float64()+math.Sqrt2) > 1e-12 {
		t.Errorf("√2-√8 ≈ %s, expected -√2 (%v)", v, err)
	}
	y, err := algebraic.NewSqrt3(
		algebraic.Lift1(number.NewInt(0)), sqrt1(t, 0, 1, 5),
		algebraic.Lift1(number.NewInt(0)), algebraic.Lift1(number.NewInt(0)),
		algebraic.Lift1(number.NewInt(4)), algebraic.Lift1(number.NewInt(1)))
	if err != nil {
		t.Fatal(err)
	}
	// √5·√4
	v, _, err = k.ToField3(y)
	if err != nil || math.Abs(v.Float64()-2*math.Sqrt(5)) > 1e-12 {
		t.Errorf("√5·√4 ≈ %s (%v)", v, err)
	}
}

func TestFloatKernel(t *testing.T) {
	k, err := NewKernel[number.Float, number.Float](Config{})
	if err != nil {
		t.Fatal(err)
	}
	p := Projection(unitLine(t), Pt[number.Float](0, 0))
	if k.X(p) != 0.5 || k.Y(p) != 0.5 {
		t.Errorf("expected projection (0.5,0.5), have (%s,%s)", k.X(p), k.Y(p))
	}
	x, _ := algebraic.NewSqrt1[number.Float](1, 1, 2)
	if _, exactness, _ := k.ToField1(x); exactness != number.Approximate {
		t.Errorf("float conversions are approximate")
	}
}

// unitLine returns the line x + y = 1 in floats.
func unitLine(t *testing.T) Line[number.Float] {
	t.Helper()
	return SupportingLine(Seg(Pt[number.Float](1, 0), Pt[number.Float](0, 1)))
}
