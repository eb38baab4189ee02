package calculation

import "math"

// MonthlyRate converts an annual rate to its monthly compounding equivalent,
// the r_m satisfying (1+r_m)^12 = 1+annual.
func MonthlyRate(annual float64) float64 {
	return math.Pow(1+annual, 1.0/12) - 1
}
