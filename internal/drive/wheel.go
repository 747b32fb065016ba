// Package drive converts distance travelled along a curve segment into
// curve parameters and wheel rotation.
//
// It is the consumer side of curve3d.Segment: an ArcTable maps distance to
// parameter using the same sampling as Segment.CalculateLength, a Follower
// walks a segment by distance, and a Wheel turns distance into revolutions.
package drive

import (
	"math"

	"github.com/chewxy/math32"
)

const twoPi = float32(2 * math.Pi)

// Wheel turns distance travelled into rotation about its axle.
type Wheel struct {
	// Diameter of the wheel in world units.
	Diameter float32

	// RevolveModifier scales the computed rotation. 1 rolls without slip;
	// negative values spin the wheel backwards (mirrored mounting).
	RevolveModifier float32

	// Angle is the accumulated rotation in radians, kept in [0, 2π).
	Angle float32
}

// NewWheel creates a wheel that rolls without slip.
func NewWheel(diameter float32) *Wheel {
	return &Wheel{Diameter: diameter, RevolveModifier: 1}
}

// Revolve rolls the wheel over distance and returns the rotation applied,
// in radians. A full revolution covers one circumference (π · Diameter).
// A wheel without a positive diameter does not turn.
func (w *Wheel) Revolve(distance float32) float32 {
	if w.Diameter <= 0 {
		return 0
	}

	circumference := w.Diameter * float32(math.Pi)
	rotation := twoPi * (distance / circumference) * w.RevolveModifier

	w.Angle = math32.Mod(w.Angle+rotation, twoPi)
	if w.Angle < 0 {
		w.Angle += twoPi
	}
	// A tiny negative remainder rounds up to exactly 2π.
	if w.Angle >= twoPi {
		w.Angle = 0
	}
	return rotation
}

// Revolutions returns how many full turns rolling over distance takes.
func (w *Wheel) Revolutions(distance float32) float32 {
	if w.Diameter <= 0 {
		return 0
	}
	return distance / (w.Diameter * float32(math.Pi)) * w.RevolveModifier
}

// Reset zeroes the accumulated rotation.
func (w *Wheel) Reset() {
	w.Angle = 0
}
