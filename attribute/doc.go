/*
Package attribute computes per-point attributes of 3-D point sets, for use
by classifiers working on the output of the svd kernel's callers.

Currently there is one attribute, DistanceToPlane: the distance of each point
to a locally fitted plane. Plane fitting is not done here; clients hand in
plane estimates, one per point.

Attributes are evaluated in parallel, with a bounded number of workers.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package attribute

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'svd'
func tracer() tracing.Trace {
	return tracing.Select("svd")
}
