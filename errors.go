package radar

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrIncompleteInput is returned when a raw input record has an empty field
// or a value that is not a finite number.
var ErrIncompleteInput = errors.New("all six values must be numbers and all fields filled")

// InputErrorKind classifies an InvalidInputError.
type InputErrorKind string

const (
	// ShapeMismatch means the categories or values do not have exactly AxisCount entries.
	ShapeMismatch InputErrorKind = "shape mismatch"
	// NonFinite means a value is NaN or infinite.
	NonFinite InputErrorKind = "non-finite value"
)

// InvalidInputError reports a chart input that cannot be plotted.
type InvalidInputError struct {
	Kind   InputErrorKind
	Detail string
}

func (e *InvalidInputError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid chart input: %s", e.Kind)
	}
	return fmt.Sprintf("invalid chart input: %s: %s", e.Kind, e.Detail)
}

func newShapeMismatch(what string, n int) *InvalidInputError {
	return &InvalidInputError{
		Kind:   ShapeMismatch,
		Detail: fmt.Sprintf("expected %d %s, got %d", AxisCount, what, n),
	}
}

// DegenerateScaleError is returned by Render when RejectDegenerate is set and
// the radial scale has no extent (every value is zero or negative).
type DegenerateScaleError struct {
	RMax float64
}

func (e *DegenerateScaleError) Error() string {
	return fmt.Sprintf("degenerate radial scale: rMax=%g", e.RMax)
}

// IsInvalidInput reports whether err is, or wraps, an *InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

// IsDegenerateScale reports whether err is, or wraps, a *DegenerateScaleError.
func IsDegenerateScale(err error) bool {
	var target *DegenerateScaleError
	return errors.As(err, &target)
}
