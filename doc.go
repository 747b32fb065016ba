// Package curve3d provides cubic Bezier curve segments in 3D.
//
// # Overview
//
// A [Segment] stores four control points and evaluates position, tangent
// and curvature at a parametric offset. It also estimates its own arc length
// by sampling and caches the estimate. Segments are the building blocks of
// longer paths followed by vehicles and cameras; composing them into paths
// is left to the caller.
//
// # Quick Start
//
//	import "github.com/gogpu/curve3d"
//
//	seg := curve3d.NewSegmentFrom(
//	    curve3d.V3(0, 0, 0), curve3d.V3(1, 0, 0),
//	    curve3d.V3(1, 1, 0), curve3d.V3(0, 1, 0),
//	)
//	length := seg.CalculateLength(200)
//	pos := seg.CurvePoint(0.5, curve3d.DerivativeNone)
//	dir := seg.CurvePoint(0.5, curve3d.DerivativeFirst).Normalize()
//
// # Out-of-range input
//
// No operation fails. Point indices outside [0, 3] read the end point and
// are ignored on write, unknown [Derivative] selectors evaluate the
// position, and sample counts below one give a length of zero. Parameters
// outside [0, 1] extrapolate the polynomial.
//
// # Cached length
//
// [Segment.Length] returns whatever [Segment.CalculateLength] last computed
// ([LengthUnset] before that). Editing single points leaves the cache stale;
// call CalculateLength again afterwards. [Segment.Translate] and
// [Segment.Rotate] preserve arc length and keep the cache.
//
// # Precision
//
// All math is float32, matching the vertex formats of GPU and engine APIs.
// Use [FromMgl] and [Matrix3FromMgl] to exchange data with go-gl/mathgl.
package curve3d
