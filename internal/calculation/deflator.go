package calculation

import "math"

// Deflate discounts a nominal series to base-period purchasing power:
// real[i] = nominal[i] / (1+monthly_inflation)^i.
func Deflate(nominal []float64, annualInflationRate float64) []float64 {
	monthly := MonthlyRate(annualInflationRate)
	out := make([]float64, len(nominal))
	for i, v := range nominal {
		out[i] = v / DeflationFactor(monthly, i)
	}
	return out
}

// DeflationFactor is the cumulative price level after month months
func DeflationFactor(monthlyInflationRate float64, month int) float64 {
	return math.Pow(1+monthlyInflationRate, float64(month))
}
