package svd

import "github.com/npillmayer/svd/number"

// Comparison is the result of comparing two quantities.
type Comparison int8

// Results of comparisons.
const (
	Smaller Comparison = -1
	Equal   Comparison = 0
	Larger  Comparison = 1
)

func (c Comparison) String() string {
	switch c {
	case Smaller:
		return "smaller"
	case Larger:
		return "larger"
	}
	return "equal"
}

// Opposite returns the result of the comparison with operands swapped.
func (c Comparison) Opposite() Comparison {
	return -c
}

func compare[R number.Ring[R]](x, y R) Comparison {
	switch c := x.Cmp(y); {
	case c < 0:
		return Smaller
	case c > 0:
		return Larger
	}
	return Equal
}

// OrientedSide tells on which side of an oriented line a point lies.
type OrientedSide int8

// Sides of an oriented line.
const (
	OnNegativeSide OrientedSide = -1
	OnBoundary     OrientedSide = 0
	OnPositiveSide OrientedSide = 1
)

func (s OrientedSide) String() string {
	switch s {
	case OnNegativeSide:
		return "negative"
	case OnPositiveSide:
		return "positive"
	}
	return "boundary"
}

// Opposite returns the side with respect to the reversed line.
func (s OrientedSide) Opposite() OrientedSide {
	return -s
}

func sideOf(sign int) OrientedSide {
	switch {
	case sign < 0:
		return OnNegativeSide
	case sign > 0:
		return OnPositiveSide
	}
	return OnBoundary
}
