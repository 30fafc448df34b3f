package svd

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/npillmayer/svd/number"
)

// Adapters between r2 points and float64 kernels. Predicates on Float
// coordinates are subject to rounding.

// PointFromR2 converts an r2 point.
func PointFromR2(p r2.Point) Point[number.Float] {
	return Pt(number.Float(p.X), number.Float(p.Y))
}

// SegmentFromR2 creates a segment from two r2 points.
func SegmentFromR2(source, target r2.Point) Segment[number.Float] {
	return Seg(PointFromR2(source), PointFromR2(target))
}

// HPointToR2 divides out the weight of p.
func HPointToR2(p HPoint[number.Float]) r2.Point {
	w := p.HW()
	return r2.Point{X: float64(p.hx / w), Y: float64(p.hy / w)}
}

// IntPointFromR2 converts an r2 point with integral coordinates into an
// exact point. The second return value is false if a coordinate is not
// integral or exceeds the int64 range.
func IntPointFromR2(p r2.Point) (Point[number.Int], bool) {
	x, okx := integral(p.X)
	y, oky := integral(p.Y)
	if !okx || !oky {
		return Point[number.Int]{}, false
	}
	return Pt(number.NewInt(x), number.NewInt(y)), true
}

func integral(f float64) (int64, bool) {
	if math.IsNaN(f) || f < -(1<<63) || f >= 1<<63 {
		return 0, false
	}
	n := int64(f)
	return n, float64(n) == f
}
