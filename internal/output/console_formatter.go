package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/savings-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	loc := localeFor(results)
	fmt.Fprintln(&buf, "SAVINGS SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Locale: %s  Base Year: %d\n", loc.Name(), results.BaseYear)
	fmt.Fprintln(&buf)
	for _, sc := range sortedScenarios(results) {
		fmt.Fprintf(&buf, "%s: Nominal=%s Real=%s FinalContribution=%s\n",
			sc.Name,
			FormatCurrency(loc, sc.FinalNominal),
			FormatCurrency(loc, sc.FinalReal),
			FormatCurrency(loc, sc.FinalContribution),
		)
		fmt.Fprintf(&buf, "  Contributed=%s Growth=%s\n", FormatCurrency(loc, sc.TotalContributed), FormatCurrency(loc, sc.InvestmentGrowth))
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (Δ %s / %s)\n", rec.ScenarioName,
			FormatCurrency(loc, rec.RealChange), formatPercentPoints(rec.PercentageChange))
	}
	return buf.Bytes(), nil
}
