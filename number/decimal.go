package number

import (
	"math"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
)

// DecimalPrecision is the number of significant digits Decimal works with.
const DecimalPrecision = 64

// decimalCtx is shared by all Decimal operations. It is never modified after
// initialization, so concurrent use is safe.
var decimalCtx = apd.BaseContext.WithPrecision(DecimalPrecision)

var decimalZero = new(apd.Decimal)

// Decimal is a decimal floating-point field element with DecimalPrecision
// significant digits. It lifts Int.
//
// Decimal computes square roots within the type (HasExactSqrt is true): the
// root is the correctly rounded value at the working precision, which is the
// same value every other Decimal computation of that root yields. Sums and
// products of operands wider than DecimalPrecision digits are rounded.
type Decimal struct {
	d *apd.Decimal
}

// NewDecimal parses a decimal number, e.g. "1.25" or "-3E7".
func NewDecimal(s string) (Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Decimal{}, errors.Wrapf(ErrArithmetic, "cannot parse decimal %q: %v", s, err)
	}
	return Decimal{d: d}, nil
}

func (x Decimal) dec() *apd.Decimal {
	if x.d == nil {
		return decimalZero
	}
	return x.d
}

type decimalOp func(d, x, y *apd.Decimal) (apd.Condition, error)

func (x Decimal) apply(op decimalOp, y Decimal, name string) Decimal {
	r := new(apd.Decimal)
	_, err := op(r, x.dec(), y.dec())
	assert(err == nil, ErrArithmetic, name)
	return Decimal{d: r}
}

// Add returns x+y.
func (x Decimal) Add(y Decimal) Decimal {
	return x.apply(decimalCtx.Add, y, "Decimal.Add")
}

// Sub returns x-y.
func (x Decimal) Sub(y Decimal) Decimal {
	return x.apply(decimalCtx.Sub, y, "Decimal.Sub")
}

// Mul returns x*y.
func (x Decimal) Mul(y Decimal) Decimal {
	return x.apply(decimalCtx.Mul, y, "Decimal.Mul")
}

// Quo returns x/y. y must not be 0.
func (x Decimal) Quo(y Decimal) Decimal {
	assert(y.Sign() != 0, ErrDivisionByZero, "Decimal.Quo")
	return x.apply(decimalCtx.Quo, y, "Decimal.Quo")
}

// Neg returns -x.
func (x Decimal) Neg() Decimal {
	r := new(apd.Decimal)
	_, err := decimalCtx.Neg(r, x.dec())
	assert(err == nil, ErrArithmetic, "Decimal.Neg")
	return Decimal{d: r}
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Decimal) Sign() int {
	return x.dec().Sign()
}

// Cmp compares x and y.
func (x Decimal) Cmp(y Decimal) int {
	return x.dec().Cmp(y.dec())
}

// FromInt64 returns n as a Decimal.
func (Decimal) FromInt64(n int64) Decimal {
	return Decimal{d: apd.New(n, 0)}
}

// FromFloat64 returns f as a Decimal. f must be finite.
func (Decimal) FromFloat64(f float64) Decimal {
	assert(!math.IsNaN(f) && !math.IsInf(f, 0), ErrNotFinite, "Decimal.FromFloat64")
	d, err := new(apd.Decimal).SetFloat64(f)
	assert(err == nil, ErrArithmetic, "Decimal.FromFloat64")
	return Decimal{d: d}
}

// Lift converts an Int into a Decimal. Integers wider than DecimalPrecision
// digits are kept unrounded until they take part in an operation.
func (Decimal) Lift(n Int) Decimal {
	coeff := new(apd.BigInt).SetMathBigInt(n.big())
	return Decimal{d: apd.NewWithBigInt(coeff, 0)}
}

// Float64 returns the float64 value nearest to x.
func (x Decimal) Float64() float64 {
	f, err := x.dec().Float64()
	if err != nil {
		tracer().Errorf("decimal %s has no float64 representation: %v", x, err)
	}
	return f
}

func (x Decimal) String() string {
	return x.dec().String()
}

// HasExactSqrt is true for Decimal. Its roots are correctly rounded to
// DecimalPrecision digits; conversions using them are tagged Exact in the
// sense of number.Exact.
func (Decimal) HasExactSqrt() bool {
	return true
}

// Sqrt returns the square root of x, rounded to DecimalPrecision digits.
func (x Decimal) Sqrt() Decimal {
	assert(x.Sign() >= 0, ErrNegativeSqrt, "Decimal.Sqrt")
	r := new(apd.Decimal)
	_, err := decimalCtx.Sqrt(r, x.dec())
	assert(err == nil, ErrArithmetic, "Decimal.Sqrt")
	return Decimal{d: r}
}
