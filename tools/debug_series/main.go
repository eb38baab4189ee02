package main

import (
	"fmt"
	"os"

	calc "github.com/rpgo/savings-calculator/internal/calculation"
	"github.com/rpgo/savings-calculator/internal/config"
	"github.com/rpgo/savings-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// debug_series prints the year-start rows of every scenario side by side,
// followed by the running gap in real value between the first two scenarios.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_series <config-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	engine := calc.NewProjectionEngine()
	res, err := engine.RunScenarios(cfg)
	if err != nil {
		panic(err)
	}
	if len(res.Scenarios) < 1 {
		fmt.Println("no scenarios")
		return
	}

	// Find the minimum number of year starts across scenarios
	minLen := -1
	for _, s := range res.Scenarios {
		if n := len(s.Series.YearStarts()); minLen == -1 || n < minLen {
			minLen = n
		}
	}
	if minLen <= 0 {
		fmt.Println("no projection data")
		return
	}

	// Header
	header := "Index,Month,Date,Year"
	for i := range res.Scenarios {
		header += fmt.Sprintf(",S%d_Nominal,S%d_Real,S%d_Contribution,S%d_Applied", i+1, i+1, i+1, i+1)
	}
	fmt.Println(header)

	starts := make([][]float64, 0)
	for idx := 0; idx < minLen; idx++ {
		first := res.Scenarios[0].Series.YearStarts()[idx]
		row := fmt.Sprintf("%d,%d,%s,%d", idx, first.Month, dateutil.MonthDate(res.BaseYear, first.Month).Format("2006-01-02"), first.Year)
		reals := make([]float64, len(res.Scenarios))
		for sidx := range res.Scenarios {
			pt := res.Scenarios[sidx].Series.YearStarts()[idx]
			reals[sidx] = pt.Real
			row += fmt.Sprintf(",%s,%s,%s,%s",
				decimal.NewFromFloat(pt.Nominal).StringFixed(0),
				decimal.NewFromFloat(pt.Real).StringFixed(0),
				decimal.NewFromFloat(pt.Contribution).StringFixed(0),
				decimal.NewFromFloat(pt.Applied).StringFixed(0))
		}
		starts = append(starts, reals)
		fmt.Println(row)
	}

	// If at least two scenarios, show where the second overtakes the first in real terms
	if len(res.Scenarios) >= 2 {
		fmt.Println()
		crossed := -1
		for idx, reals := range starts {
			diff := decimal.NewFromFloat(reals[1]).Sub(decimal.NewFromFloat(reals[0]))
			fmt.Printf("Year %d: realA=%.0f realB=%.0f diff=%s\n", res.BaseYear+idx, reals[0], reals[1], diff.StringFixed(0))
			if crossed == -1 && diff.IsPositive() {
				crossed = idx
			}
		}
		if crossed >= 0 {
			fmt.Printf("\n%s overtakes %s in year %d\n", res.Scenarios[1].Name, res.Scenarios[0].Name, res.BaseYear+crossed)
		} else {
			fmt.Printf("\n%s never overtakes %s\n", res.Scenarios[1].Name, res.Scenarios[0].Name)
		}
	}
}
