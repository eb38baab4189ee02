package dateutil

import (
	"time"
)

// MonthsPerYear is the number of projection steps in one calendar year.
const MonthsPerYear = 12

// MonthsInYears converts a whole-year horizon to a month count
func MonthsInYears(years int) int {
	return years * MonthsPerYear
}

// YearForMonth maps a 0-based projection month index to its calendar year.
// Month 0..11 fall in baseYear, 12..23 in baseYear+1, and so on.
func YearForMonth(month, baseYear int) int {
	return month/MonthsPerYear + baseYear
}

// MonthDate returns the first day of the calendar month for a projection month index
func MonthDate(baseYear, month int) time.Time {
	return AddMonths(time.Date(baseYear, time.January, 1, 0, 0, 0, 0, time.UTC), month)
}

// IsYearBoundary reports whether the month index starts a new projection year
func IsYearBoundary(month int) bool {
	return month%MonthsPerYear == 0
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}
