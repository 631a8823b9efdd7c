package radar

import (
	"math"

	"github.com/jbeda/geom"
)

// angleTolerance absorbs the rounding of base angles computed by division.
const angleTolerance = 1e-9

// Orientation positions the axes on screen. Offset is where base angle 0
// lands, in mathematical convention; Direction is +1 for counter-clockwise
// and -1 for clockwise.
type Orientation struct {
	Offset    float64
	Direction int
}

// DefaultOrientation puts axis 0 at the top and proceeds clockwise.
func DefaultOrientation() Orientation {
	return Orientation{Offset: math.Pi / 2, Direction: -1}
}

func (o Orientation) direction() float64 {
	if o.Direction < 0 {
		return -1
	}
	return 1
}

// Display returns the angle at which base lands on screen, counter-clockwise
// from the positive x-axis.
func (o Orientation) Display(base float64) float64 {
	return normalizeAngle(o.Offset + o.direction()*base)
}

// Bearing returns the on-screen angle of base measured clockwise from the top,
// normalized to [0, 2π). This is the transformed angle labels are aligned by.
func (o Orientation) Bearing(base float64) float64 {
	return normalizeAngle(math.Pi/2 - o.Display(base))
}

// Point returns the screen coordinate of a point at radius pixels from center
// along base. Screen y grows downwards.
func (o Orientation) Point(center geom.Coord, radius, base float64) geom.Coord {
	b := o.Bearing(base)
	return geom.Coord{
		X: center.X + radius*math.Sin(b),
		Y: center.Y - radius*math.Cos(b),
	}
}

// ClassifyAlignment picks the horizontal alignment of a label at bearing
// theta: centered at the top and bottom, left-aligned (text running outward
// to the right) on the right half, right-aligned on the left half.
func ClassifyAlignment(theta float64) HorizontalAlignment {
	t := normalizeAngle(theta)
	switch {
	case nearAngle(t, 0), nearAngle(t, 2*math.Pi), nearAngle(t, math.Pi):
		return HorizontalCenter
	case t < math.Pi:
		return HorizontalLeft
	default:
		return HorizontalRight
	}
}

func nearAngle(a, b float64) bool {
	return math.Abs(a-b) < angleTolerance
}

// normalizeAngle folds a into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
