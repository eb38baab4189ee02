package output

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/savings-calculator/internal/calculation"
	"github.com/rpgo/savings-calculator/internal/domain"
	"github.com/rpgo/savings-calculator/internal/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestSweep(t *testing.T) []calculation.SweepPoint {
	t.Helper()
	base := domain.SimulationParameters{
		InitialBalance:      1000000,
		InitialContribution: 100000,
		AnnualReturnRate:    0.08,
		AnnualInflationRate: 0.04,
		HorizonYears:        2,
		Growth:              domain.ContinuousGrowth{AnnualGrowthRate: 0.05},
	}
	values, err := calculation.SweepValues(0.04, 0.08, 0.02)
	require.NoError(t, err)
	points, err := calculation.NewProjectionEngine().Sweep(context.Background(), base, calculation.SweepReturn, values, 2)
	require.NoError(t, err)
	return points
}

func TestSweepCSVReport_Summary(t *testing.T) {
	report := &SweepCSVReport{Scenario: "Base", Field: calculation.SweepReturn, Points: buildTestSweep(t)}

	data, err := report.SummaryCSV()
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Scenario,return,FinalNominal,FinalReal,FinalContribution,RealChangeFromFirst", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Base,0.04,"), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], ",0.00"), lines[1])
	assert.True(t, strings.HasPrefix(lines[3], "Base,0.08,"), lines[3])
}

func TestSweepCSVReport_AllReports(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sweep")
	report := &SweepCSVReport{Scenario: "Base", Field: calculation.SweepReturn, Points: buildTestSweep(t), Locale: locale.US}
	require.NoError(t, report.GenerateAllCSVReports(dir))

	yearly, err := os.ReadFile(filepath.Join(dir, "sweep_yearly.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(yearly)), "\n")
	// three runs, each with year starts 0, 12 and 24
	require.Len(t, lines, 10)
	assert.Equal(t, "return,Year,Nominal Value (Millions),Real Value (Millions),Monthly Contribution (Thousands)", lines[0])
	assert.Equal(t, "0.04,2024,1.000000,1.000000,100.000000", lines[1])

	_, err = os.Stat(filepath.Join(dir, "sweep_summary.csv"))
	assert.NoError(t, err)
}

func TestSweepHTMLReport(t *testing.T) {
	report := &SweepHTMLReport{Scenario: "Base <1>", Field: calculation.SweepReturn, Points: buildTestSweep(t)}
	data, err := report.Render()
	require.NoError(t, err)
	html := string(data)
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<svg")
	assert.Contains(t, html, "Sensitivity:")
	assert.Contains(t, html, "Base &lt;1&gt;")
	assert.NotContains(t, html, "Base <1>")

	path := filepath.Join(t.TempDir(), "nested", "sweep.html")
	require.NoError(t, report.GenerateHTMLReport(path))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSweepHTMLReport_SinglePoint(t *testing.T) {
	points := buildTestSweep(t)[:1]
	report := &SweepHTMLReport{Scenario: "Base", Field: calculation.SweepReturn, Points: points}
	assert.Equal(t, "Sensitivity: single run", report.sensitivity())
}
