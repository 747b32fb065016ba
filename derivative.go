package curve3d

import "fmt"

// Derivative selects what Segment.CurvePoint evaluates.
type Derivative int

const (
	// DerivativeNone evaluates the curve position.
	DerivativeNone Derivative = iota

	// DerivativeFirst evaluates the tangent (velocity) vector.
	DerivativeFirst

	// DerivativeSecond evaluates the curvature (acceleration) vector.
	DerivativeSecond
)

// String returns a human-readable name for the selector.
func (d Derivative) String() string {
	switch d {
	case DerivativeNone:
		return "None"
	case DerivativeFirst:
		return "First"
	case DerivativeSecond:
		return "Second"
	default:
		return fmt.Sprintf("Derivative(%d)", int(d))
	}
}
