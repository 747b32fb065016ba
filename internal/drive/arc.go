package drive

import (
	"sort"

	"github.com/gogpu/curve3d"
)

// ArcTable maps distance along a segment to the curve parameter.
//
// It stores the cumulative chord length at samples+1 evenly spaced
// parameter stops, summed in the same order as Segment.CalculateLength, so
// Total matches the segment's length estimate for the same sample count.
type ArcTable struct {
	cumulative []float32
}

// NewArcTable samples seg. A sample count below 1 produces an empty table
// whose total is 0 and which maps every distance to parameter 0.
func NewArcTable(seg curve3d.Segment, samples int) *ArcTable {
	if samples < 1 {
		return &ArcTable{cumulative: []float32{0}}
	}

	cumulative := make([]float32, samples+1)
	prev := seg.CurvePoint(0, curve3d.DerivativeNone)
	var total float32
	for i := 1; i <= samples; i++ {
		p := seg.CurvePoint(float32(i)/float32(samples), curve3d.DerivativeNone)
		total += p.Distance(prev)
		cumulative[i] = total
		prev = p
	}
	return &ArcTable{cumulative: cumulative}
}

// Samples returns the number of chords in the table.
func (a *ArcTable) Samples() int {
	return len(a.cumulative) - 1
}

// Total returns the sampled arc length.
func (a *ArcTable) Total() float32 {
	return a.cumulative[len(a.cumulative)-1]
}

// ParamAt returns the curve parameter reached after travelling distance from
// the start. Distances are clamped to [0, Total], so the result is in [0, 1].
func (a *ArcTable) ParamAt(distance float32) float32 {
	samples := a.Samples()
	total := a.Total()
	if samples < 1 || total <= 0 || distance <= 0 {
		return 0
	}
	if distance >= total {
		return 1
	}

	// First stop at or beyond distance; i >= 1 because cumulative[0] == 0 < distance.
	i := sort.Search(len(a.cumulative), func(k int) bool {
		return a.cumulative[k] >= distance
	})

	lo, hi := a.cumulative[i-1], a.cumulative[i]
	frac := float32(0)
	if hi > lo {
		frac = (distance - lo) / (hi - lo)
	}
	return (float32(i-1) + frac) / float32(samples)
}

// DistanceAt is the inverse of ParamAt: the distance travelled when the
// parameter reaches t. t is clamped to [0, 1].
func (a *ArcTable) DistanceAt(t float32) float32 {
	samples := a.Samples()
	if samples < 1 || t <= 0 {
		return 0
	}
	if t >= 1 {
		return a.Total()
	}

	pos := t * float32(samples)
	i := int(pos)
	if i >= samples {
		return a.Total()
	}
	frac := pos - float32(i)
	return a.cumulative[i] + (a.cumulative[i+1]-a.cumulative[i])*frac
}
