package radar

import "math"

// angleStep is the angular distance between two neighbouring axes.
const angleStep = 2 * math.Pi / AxisCount

// PolarPoint is a sample in polar form. Angle is in radians, counter-clockwise
// from the positive x-axis, before any chart orientation is applied.
type PolarPoint struct {
	Angle  float64
	Radius float64
}

// ClosedPolygon holds the six axis samples followed by a repeat of the first,
// so that a connected path through it draws a closed hexagon.
type ClosedPolygon [AxisCount + 1]PolarPoint

// IsClosed reports whether the last point repeats the first.
func (p ClosedPolygon) IsClosed() bool {
	return p[0] == p[AxisCount]
}

// Vertices returns the six distinct samples, without the closing repeat.
func (p ClosedPolygon) Vertices() []PolarPoint {
	v := make([]PolarPoint, AxisCount)
	copy(v, p[:AxisCount])
	return v
}

// Geometry is the orientation-free description of a chart.
type Geometry struct {
	// Angles are the base axis angles 2π·i/6.
	Angles  [AxisCount]float64
	Polygon ClosedPolygon
	// RMax is the upper bound of the visible radius range [0, RMax].
	RMax float64
}

// Scale returns the radial scale of the geometry.
func (g *Geometry) Scale() RadialScale {
	return RadialScale{Max: g.RMax}
}

// ComputeGeometry converts six values into axis angles, the closed polygon
// and the radial upper bound. It fails with an *InvalidInputError when
// len(values) != AxisCount and never reads or modifies values otherwise.
func ComputeGeometry(values []float64) (*Geometry, error) {
	if len(values) != AxisCount {
		return nil, newShapeMismatch("values", len(values))
	}
	var v [AxisCount]float64
	copy(v[:], values)
	return geometryOf(v), nil
}

func geometryOf(values [AxisCount]float64) *Geometry {
	g := &Geometry{}
	for i := range g.Angles {
		g.Angles[i] = AxisAngle(i)
		g.Polygon[i] = PolarPoint{Angle: g.Angles[i], Radius: values[i]}
	}
	g.Polygon[AxisCount] = g.Polygon[0]
	g.RMax = scaleMax(values[:])
	return g
}

// AxisAngle returns the unoffset angle of axis i.
func AxisAngle(i int) float64 {
	return angleStep * float64(i)
}
