package radar

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Validate checks the input for problems a form would reject, such as empty
// category names, and returns an error describing all of them. Render does
// not require it: a chart with blank labels still draws.
func (in ChartInput) Validate() error {
	var errs []string
	for i, c := range in.Categories {
		if strings.TrimSpace(c) == "" {
			errs = append(errs, fmt.Sprintf("category %d is empty", i+1))
		}
	}
	for i, v := range in.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Sprintf("value %d is not finite", i+1))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Errorf("validation failed:\n  %s", strings.Join(errs, "\n  "))
}
