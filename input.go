package radar

import (
	"fmt"
	"math"
)

// AxisCount is the number of axes of a hexagonal radar chart.
const AxisCount = 6

// ChartInput is a validated set of six categories, six values and a title.
// It is a plain value: copies are independent and nothing keeps a reference
// to the slices it was built from.
type ChartInput struct {
	Categories [AxisCount]string
	Values     [AxisCount]float64
	Title      string
}

// NewChartInput builds a ChartInput from caller-owned slices.
// It fails with an *InvalidInputError unless both slices hold exactly
// AxisCount entries and every value is finite.
func NewChartInput(categories []string, values []float64, title string) (ChartInput, error) {
	var in ChartInput
	if len(categories) != AxisCount {
		return in, newShapeMismatch("categories", len(categories))
	}
	if len(values) != AxisCount {
		return in, newShapeMismatch("values", len(values))
	}
	copy(in.Categories[:], categories)
	copy(in.Values[:], values)
	in.Title = title
	for i, v := range in.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ChartInput{}, &InvalidInputError{
				Kind:   NonFinite,
				Detail: fmt.Sprintf("value %d (%s) is %v", i+1, in.Categories[i], v),
			}
		}
	}
	return in, nil
}

// Geometry computes the chart geometry of the input values.
func (in ChartInput) Geometry() *Geometry {
	return geometryOf(in.Values)
}
