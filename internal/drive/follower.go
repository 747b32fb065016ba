package drive

import (
	"github.com/gogpu/curve3d"
)

// Follower moves along a single segment by distance, rolling an optional
// wheel as it goes.
type Follower struct {
	seg       curve3d.Segment
	table     *ArcTable
	wheel     *Wheel
	travelled float32
}

// NewFollower creates a follower at the start of seg. samples controls the
// precision of the distance-to-parameter mapping. wheel may be nil.
func NewFollower(seg curve3d.Segment, samples int, wheel *Wheel) *Follower {
	return &Follower{
		seg:   seg,
		table: NewArcTable(seg, samples),
		wheel: wheel,
	}
}

// Advance moves distance further along the segment (negative moves back),
// clamped to the segment's ends. The wheel revolves by the distance actually
// covered. It returns the new position and the unit tangent there; the
// tangent is zero where the curve has no direction.
func (f *Follower) Advance(distance float32) (pos, tangent curve3d.Vec3) {
	target := f.travelled + distance
	if target < 0 {
		target = 0
	}
	if total := f.table.Total(); target > total {
		target = total
	}

	moved := target - f.travelled
	f.travelled = target
	if f.wheel != nil && moved != 0 {
		f.wheel.Revolve(moved)
	}

	t := f.table.ParamAt(f.travelled)
	pos = f.seg.CurvePoint(t, curve3d.DerivativeNone)
	tangent = f.seg.CurvePoint(t, curve3d.DerivativeFirst).Normalize()

	if f.Done() && moved != 0 {
		curve3d.Logger().Debug("drive: reached end of segment", "travelled", f.travelled)
	}
	return pos, tangent
}

// Param returns the current curve parameter.
func (f *Follower) Param() float32 {
	return f.table.ParamAt(f.travelled)
}

// Travelled returns the distance covered from the start of the segment.
func (f *Follower) Travelled() float32 {
	return f.travelled
}

// Remaining returns the distance left to the end of the segment.
func (f *Follower) Remaining() float32 {
	return f.table.Total() - f.travelled
}

// Done reports whether the follower has reached the end of the segment.
func (f *Follower) Done() bool {
	return f.travelled >= f.table.Total()
}
