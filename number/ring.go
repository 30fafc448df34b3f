package number

// Ring is the set of operations the kernel needs from an exact scalar type.
//
// Implementations are value types and their zero value must represent the
// number 0. Operations never modify the receiver or the argument, they return
// a fresh value. FromInt64 ignores the receiver's value, which allows
// constructing constants from the zero value:
//
//	var zero R
//	two := zero.FromInt64(2)
type Ring[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	// Sign returns -1, 0 or +1.
	Sign() int
	// Cmp returns -1, 0 or +1 for receiver <, ==, > argument.
	Cmp(T) int
	FromInt64(int64) T
	// Float64 returns the nearest float64 value. It is meant for approximations
	// only and must never influence a predicate's result.
	Float64() float64
	String() string
}

// Field is a Ring with division. R is the ring type the field is built over,
// Lift converts ring values into the field.
//
// HasExactSqrt reports whether Sqrt is computed within the type. It is a
// property of the type and returns the same value for every receiver. Sqrt may
// be called for types without this capability, but the result is then an
// approximation.
type Field[F any, R any] interface {
	Ring[F]
	Quo(F) F
	Sqrt() F
	HasExactSqrt() bool
	FromFloat64(float64) F
	Lift(R) F
}

// PerfectSquarer is implemented by types able to recognize perfect squares.
// ExactSqrt returns the exact square root and true if one exists in the type.
type PerfectSquarer[T any] interface {
	ExactSqrt() (T, bool)
}

// ApproxSquarer is implemented by field types which approximate square roots
// within the type, without a detour through float64. ApproxSqrt must accept
// every non-negative value, however large or small.
type ApproxSquarer[T any] interface {
	ApproxSqrt() T
}

// Exactness tags values which may have been computed approximately.
type Exactness uint8

const (
	// Exact marks a result whose square roots were taken by the field type
	// itself (see Field.HasExactSqrt) or were roots of perfect squares. It does
	// not claim mathematical exactness: a fixed-precision type such as Decimal
	// rounds its roots to the working precision. Exact means there was no
	// detour through an approximation outside the type.
	Exact Exactness = iota
	// Approximate marks a result with a square root approximated outside the
	// field type's own root, either through float64 or by ApproxSqrt.
	Approximate
)

func (e Exactness) String() string {
	if e == Exact {
		return "exact"
	}
	return "approximate"
}

// Combine returns the weaker of two exactness tags.
func (e Exactness) Combine(other Exactness) Exactness {
	if e == Approximate || other == Approximate {
		return Approximate
	}
	return Exact
}

// Square returns x*x.
func Square[T Ring[T]](x T) T {
	return x.Mul(x)
}

// IsZero reports whether x is zero.
func IsZero[T Ring[T]](x T) bool {
	return x.Sign() == 0
}

// Equal reports whether x and y compare equal.
func Equal[T Ring[T]](x, y T) bool {
	return x.Cmp(y) == 0
}

var (
	_ Ring[Int]           = Int{}
	_ Field[Rat, Int]     = Rat{}
	_ Field[Float, Float] = Float(0)
	_ Field[Decimal, Int] = Decimal{}
	_ PerfectSquarer[Int] = Int{}
	_ PerfectSquarer[Rat] = Rat{}
	_ ApproxSquarer[Rat]  = Rat{}
)
