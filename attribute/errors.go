package attribute

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidConfig is returned for malformed attribute configurations.
	ErrInvalidConfig = errors.New("attribute: invalid config")
	// ErrDegeneratePlane flags a plane estimate with a zero normal.
	ErrDegeneratePlane = errors.New("attribute: degenerate plane")
	// ErrIndexOutOfBounds flags a point index outside the point set.
	ErrIndexOutOfBounds = errors.New("attribute: index out of bounds")
)
