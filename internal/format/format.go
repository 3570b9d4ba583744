// Package format implements human-readable, unit-prefixed value printing
// for the scenario drivers, adapted from the teacher's engineering-notation
// helper (the machine-readable plotfile output always uses %.17e, never
// this formatting).
package format

import (
	"fmt"
	"math"
)

// ValueFactor renders value with the unit prefix (m, u, n, p) closest to
// its magnitude, falling back to scientific notation below 1e-12.
func ValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue >= 1:
		return fmt.Sprintf("%.4f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.4f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.4f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.4f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.4f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.4e %s", value, unit)
	}
}
