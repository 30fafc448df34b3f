package attribute

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r3"
	"golang.org/x/sync/errgroup"
)

// Plane is the plane n·p + d = 0.
type Plane struct {
	Normal r3.Vector
	Offset float64
}

// IsDegenerate is true for planes with a zero normal.
func (pl Plane) IsDegenerate() bool {
	return pl.Normal.Norm2() == 0
}

// Distance returns the Euclidean distance of p to the plane.
func (pl Plane) Distance(p r3.Vector) float64 {
	return math.Abs(pl.Normal.Dot(p)+pl.Offset) / pl.Normal.Norm()
}

// PlaneEstimates provides a locally fitted plane for every point index.
// Implementations that also have a method Len() int are checked to cover
// the whole point set.
type PlaneEstimates interface {
	Plane(i int) Plane
}

// Planes is a slice of plane estimates, indexed like the point set.
type Planes []Plane

// Plane returns the i-th plane.
func (planes Planes) Plane(i int) Plane {
	return planes[i]
}

// Len is the number of plane estimates.
func (planes Planes) Len() int {
	return len(planes)
}

// DistanceToPlane is the attribute holding the distance of each point to its
// locally fitted plane. Noisy, non-planar regions have large values.
type DistanceToPlane struct {
	points []r3.Vector
	planes PlaneEstimates
	values []float64 // nil if not precomputed
	weight float64
	mean   float64
	max    float64
}

// NewDistanceToPlane creates the attribute for a point set and one plane
// estimate per point. Statistics are computed in parallel; with
// cfg.Precompute all values are retained.
//
// Fewer plane estimates than points result in ErrIndexOutOfBounds, any
// degenerate plane estimate in ErrDegeneratePlane. If ctx is
// cancelled, creation stops and the context's error is returned.
func NewDistanceToPlane(ctx context.Context, points []r3.Vector, planes PlaneEstimates,
	cfg Config) (*DistanceToPlane, error) {
	//
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	if l, ok := planes.(interface{ Len() int }); ok && l.Len() < len(points) {
		return nil, errors.Wrapf(ErrIndexOutOfBounds, "%d plane estimates for %d points",
			l.Len(), len(points))
	}
	attr := &DistanceToPlane{
		points: points,
		planes: planes,
		weight: 1,
	}
	values := make([]float64, len(points))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for from := 0; from < len(points); from += cfg.ChunkSize {
		to := min(from+cfg.ChunkSize, len(points))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := from; i < to; i++ {
				pl := planes.Plane(i)
				if pl.IsDegenerate() {
					return errors.Wrapf(ErrDegeneratePlane, "plane estimate for point #%d", i)
				}
				values[i] = pl.Distance(points[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	attr.mean, attr.max = meanMax(values)
	if cfg.Precompute {
		attr.values = values
	}
	tracer().Debugf("%s: %d points, mean = %g, max = %g", attr.Name(), len(points),
		attr.mean, attr.max)
	return attr, nil
}

// meanMax returns mean and maximum of values, or 0, 0 for an empty slice.
func meanMax(values []float64) (mean, maximum float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += v
		maximum = max(maximum, v)
	}
	return sum / float64(len(values)), maximum
}

// Name returns "distance_to_plane".
func (attr *DistanceToPlane) Name() string {
	return "distance_to_plane"
}

// Len returns the number of points.
func (attr *DistanceToPlane) Len() int {
	return len(attr.points)
}

// Value returns the distance of point #i to its plane.
func (attr *DistanceToPlane) Value(i int) (float64, error) {
	if i < 0 || i >= len(attr.points) {
		return 0, errors.Wrapf(ErrIndexOutOfBounds, "point #%d of %d", i, len(attr.points))
	}
	if attr.values != nil {
		return attr.values[i], nil
	}
	return attr.planes.Plane(i).Distance(attr.points[i]), nil
}

// Weight returns the attribute's weight for classification. It defaults to 1.
func (attr *DistanceToPlane) Weight() float64 {
	return attr.weight
}

// SetWeight sets the attribute's weight.
func (attr *DistanceToPlane) SetWeight(w float64) {
	attr.weight = w
}

// Mean returns the mean distance over all points.
func (attr *DistanceToPlane) Mean() float64 {
	return attr.mean
}

// Max returns the maximum distance over all points.
func (attr *DistanceToPlane) Max() float64 {
	return attr.max
}
