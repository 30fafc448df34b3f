package number

import "github.com/cockroachdb/errors"

var (
	// ErrDivisionByZero signals a field division with a zero divisor.
	ErrDivisionByZero = errors.New("number: division by zero")
	// ErrNegativeSqrt signals a square root of a negative number.
	ErrNegativeSqrt = errors.New("number: square root of negative number")
	// ErrNotFinite signals a conversion from NaN or an infinite float.
	ErrNotFinite = errors.New("number: value is not finite")
	// ErrArithmetic signals a failing operation of an underlying number library.
	ErrArithmetic = errors.New("number: arithmetic failure")
)
