package curve3d

// NumPoints is the number of control points in a Segment.
const NumPoints = 4

// LengthUnset is the cached length of a segment that has never been sampled.
// Arc length is never negative, so it cannot collide with a real estimate.
const LengthUnset float32 = -1

// Segment is a cubic Bezier curve in 3D, the building block of longer paths.
//
// P0 is the start point, P1 and P2 are the intermediate control points and
// P3 is the end point. The segment also caches the result of its most recent
// CalculateLength call.
//
// The cache is not invalidated by SetPoint or TranslatePoint: callers that
// edit individual points must call CalculateLength again. Translate and
// Rotate preserve arc length, so the cache stays correct across them.
//
// Segment is a value type. Copying it copies the points and the cache.
// Read-only methods may be called concurrently; mutating methods need
// exclusive access.
type Segment struct {
	points [NumPoints]Vec3
	length float32
}

// NewSegment creates a segment with all four points at the origin and an
// unset length.
func NewSegment() Segment {
	return Segment{length: LengthUnset}
}

// NewSegmentFrom creates a segment from its four control points.
// The length stays unset until CalculateLength is called.
func NewSegmentFrom(p0, p1, p2, p3 Vec3) Segment {
	return Segment{
		points: [NumPoints]Vec3{p0, p1, p2, p3},
		length: LengthUnset,
	}
}

// Point returns the control point at index. Indices outside [0, 3] return
// the end point P3.
func (s Segment) Point(index int) Vec3 {
	if index < 0 || index >= NumPoints {
		return s.points[NumPoints-1]
	}
	return s.points[index]
}

// Points returns a copy of the four control points.
func (s Segment) Points() [NumPoints]Vec3 {
	return s.points
}

// Start returns the starting point of the curve.
func (s Segment) Start() Vec3 {
	return s.points[0]
}

// End returns the ending point of the curve.
func (s Segment) End() Vec3 {
	return s.points[NumPoints-1]
}

// SetPoint replaces the control point at index. Invalid indices are ignored.
func (s *Segment) SetPoint(index int, point Vec3) {
	if index < 0 || index >= NumPoints {
		Logger().Debug("curve3d: ignoring SetPoint out of range", "index", index)
		return
	}
	s.points[index] = point
}

// Length returns the most recently calculated arc length, or LengthUnset if
// CalculateLength has not been called. It never recomputes.
func (s Segment) Length() float32 {
	return s.length
}

// HasLength reports whether the cached length holds an estimate.
func (s Segment) HasLength() bool {
	return s.length != LengthUnset
}

// CalculateLength samples the curve at samples+1 evenly spaced parameter
// values and sums the distances between consecutive positions. The result
// replaces the cached length and is returned. 100 or more samples are
// usually visually accurate. A sample count below 1 yields 0.
func (s *Segment) CalculateLength(samples int) float32 {
	if samples < 1 {
		s.length = 0
		return 0
	}

	var total float32
	prev := s.Position(0)
	for i := 1; i <= samples; i++ {
		p := s.Position(float32(i) / float32(samples))
		total += p.Distance(prev)
		prev = p
	}

	s.length = total
	// Guarded so the hot path does not box its attributes.
	if debugEnabled() {
		Logger().Debug("curve3d: sampled segment length", "samples", samples, "length", total)
	}
	return total
}

// CurvePoint evaluates the curve at delta. The derivative selects position,
// tangent or curvature; unsupported selectors return the position.
// delta is expected in [0, 1] but is not clamped: values outside it
// extrapolate the same polynomial.
func (s Segment) CurvePoint(delta float32, derivative Derivative) Vec3 {
	switch derivative {
	case DerivativeFirst:
		return s.Tangent(delta)
	case DerivativeSecond:
		return s.Curvature(delta)
	default:
		return s.Position(delta)
	}
}

// Position evaluates the curve position at t by de Casteljau subdivision.
// Equal neighbouring points interpolate exactly, so a segment collapsed to
// a single point stays on it for every t.
func (s Segment) Position(t float32) Vec3 {
	p := s.points
	a := p[0].Lerp(p[1], t)
	b := p[1].Lerp(p[2], t)
	c := p[2].Lerp(p[3], t)

	ab := a.Lerp(b, t)
	bc := b.Lerp(c, t)
	return ab.Lerp(bc, t)
}

// Tangent returns the first derivative at t. The vector is not normalized.
func (s Segment) Tangent(t float32) Vec3 {
	mt := 1 - t
	d0 := s.points[1].Sub(s.points[0])
	d1 := s.points[2].Sub(s.points[1])
	d2 := s.points[3].Sub(s.points[2])

	// 3(1-t)^2 (P1-P0) + 6(1-t)t (P2-P1) + 3t^2 (P3-P2)
	return d0.Mul(3 * mt * mt).
		Add(d1.Mul(6 * mt * t)).
		Add(d2.Mul(3 * t * t))
}

// Curvature returns the second derivative at t. The vector is not normalized.
func (s Segment) Curvature(t float32) Vec3 {
	p := s.points
	a := p[2].Sub(p[1].Mul(2)).Add(p[0])
	b := p[3].Sub(p[2].Mul(2)).Add(p[1])

	// 6(1-t)(P2-2P1+P0) + 6t(P3-2P2+P1)
	return a.Mul(6 * (1 - t)).Add(b.Mul(6 * t))
}

// Translate moves every point by offset. The cached length is kept.
func (s *Segment) Translate(offset Vec3) {
	for i := range s.points {
		s.points[i] = s.points[i].Add(offset)
	}
}

// TranslatePoint moves a single point by offset. Invalid indices are
// ignored. The cached length is kept even though it may now be stale.
func (s *Segment) TranslatePoint(index int, offset Vec3) {
	if index < 0 || index >= NumPoints {
		Logger().Debug("curve3d: ignoring TranslatePoint out of range", "index", index)
		return
	}
	s.points[index] = s.points[index].Add(offset)
}

// Rotate applies rotation to every point about the origin. The cached
// length is kept.
func (s *Segment) Rotate(rotation Matrix3) {
	for i := range s.points {
		s.points[i] = rotation.TransformVec(s.points[i])
	}
}

// Reset returns the segment to the NewSegment state.
func (s *Segment) Reset() {
	*s = NewSegment()
}

// Take transfers the segment out of s: it returns the current points and
// cached length and resets s to the NewSegment state.
func (s *Segment) Take() Segment {
	moved := *s
	s.Reset()
	return moved
}
