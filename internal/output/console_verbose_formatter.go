package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/savings-calculator/internal/domain"
	"github.com/rpgo/savings-calculator/internal/locale"
	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	loc := localeFor(results)

	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf, strings.ToUpper(loc.Label(locale.LabelTitle)))
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	if results.RunID != "" {
		fmt.Fprintf(&buf, "Run: %s\n", results.RunID)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, scenario := range results.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, scenario.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		writeParameters(&buf, loc, scenario.Parameters)
		fmt.Fprintln(&buf)
		writeYearlyTable(&buf, loc, scenario.Series)
		fmt.Fprintln(&buf)
		writeFinalValues(&buf, loc, scenario)
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf)
	}

	// Recommendation section using existing AnalyzeScenarios logic
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "SUMMARY & RECOMMENDATIONS")
		fmt.Fprintln(&buf, "=========================")
		fmt.Fprintf(&buf, "Best scenario (real value): %s\n", rec.ScenarioName)
		if results.BestForNominal != "" {
			fmt.Fprintf(&buf, "Best scenario (nominal value): %s\n", results.BestForNominal)
		}
		if rec.ScenarioName != rec.BaselineName {
			fmt.Fprintf(&buf, "Real Value Change vs %s: %s (%s)\n", rec.BaselineName,
				signed(FormatCurrency(loc, rec.RealChange), rec.RealChange),
				signed(formatPercentPoints(rec.PercentageChange), rec.PercentageChange))
		}
	}

	return buf.Bytes(), nil
}

func writeParameters(buf *bytes.Buffer, loc locale.Locale, p domain.SimulationParameters) {
	fmt.Fprintf(buf, "%s:\n", strings.ToUpper(loc.Label(locale.LabelSimulationParameters)))
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	paramLine(buf, loc.Label(locale.LabelInitialInvestment), loc.FormatCurrency(p.InitialBalance))
	paramLine(buf, loc.Label(locale.LabelInitialContribution), loc.FormatCurrency(p.InitialContribution))
	paramLine(buf, loc.Label(locale.LabelReturnRate), FormatPercentage(p.AnnualReturnRate))
	paramLine(buf, loc.Label(locale.LabelInflationRate), FormatPercentage(p.AnnualInflationRate))
	paramLine(buf, loc.Label(locale.LabelHorizon), intToString(p.HorizonYears))
	fmt.Fprintf(buf, "  %s\n", growthDescription(loc, p.Growth))
	if p.Family != nil {
		paramLine(buf, loc.Label(locale.LabelFamilyYear), familyStart(p.Family))
		paramLine(buf, loc.Label(locale.LabelFamilyExpense), loc.FormatCurrency(p.Family.MonthlyExpense)+loc.Label(locale.LabelPerMonth))
	}
}

func paramLine(buf *bytes.Buffer, label, value string) {
	fmt.Fprintf(buf, "  %s: %s\n", label, value)
}

// familyStart shows whole-year milestones as years and anything else in months.
func familyStart(f *domain.FamilyAdjustment) string {
	if f.MilestoneMonth%12 == 0 {
		return intToString(f.MilestoneMonth / 12)
	}
	return fmt.Sprintf("%.2f (month %d)", float64(f.MilestoneMonth)/12, f.MilestoneMonth)
}

func writeYearlyTable(buf *bytes.Buffer, loc locale.Locale, series *domain.MonthlySeries) {
	if series == nil {
		return
	}
	fmt.Fprintf(buf, "%-6s %18s %18s %18s\n",
		loc.Label(locale.LabelYears), loc.Label(locale.LabelNominalValue), loc.Label(locale.LabelRealValue), loc.Label(locale.LabelMonthlyContribution))
	fmt.Fprintln(buf, strings.Repeat("-", 63))
	for _, p := range series.YearStarts() {
		fmt.Fprintf(buf, "%-6d %18s %18s %18s\n", p.Year, loc.FormatCurrency(p.Nominal), loc.FormatCurrency(p.Real), loc.FormatCurrency(p.Contribution))
	}
}

func writeFinalValues(buf *bytes.Buffer, loc locale.Locale, sc domain.ScenarioSummary) {
	fmt.Fprintf(buf, "%s:\n", strings.ToUpper(loc.Label(locale.LabelFinalValues)))
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	paramLine(buf, loc.Label(locale.LabelNominalValue), FormatCurrency(loc, sc.FinalNominal))
	paramLine(buf, loc.Label(locale.LabelRealValueAdjusted), FormatCurrency(loc, sc.FinalReal))
	paramLine(buf, loc.Label(locale.LabelFinalContribution), FormatCurrency(loc, sc.FinalContribution))
	paramLine(buf, "Total Contributed", FormatCurrency(loc, sc.TotalContributed))
	paramLine(buf, "Investment Growth", FormatCurrency(loc, sc.InvestmentGrowth))
	if sc.FamilyMonths > 0 {
		paramLine(buf, "Family Expense Paid", FormatCurrency(loc, sc.TotalFamilyCost))
		paramLine(buf, "Months Without Contribution", fmt.Sprintf("%d of %d", sc.ZeroedMonths, sc.FamilyMonths))
	}
	if !sc.FinalNominal.IsZero() {
		erosion := decimal.NewFromInt(1).Sub(sc.FinalReal.Div(sc.FinalNominal))
		paramLine(buf, "Purchasing Power Lost to Inflation", FormatPercentage(erosion.InexactFloat64()))
	}
}
