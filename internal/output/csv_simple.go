package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/savings-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
// Amounts are unscaled currency units.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "HorizonYears", "FinalNominal", "FinalReal", "FinalContribution", "TotalContributed", "TotalFamilyCost", "InvestmentGrowth", "FamilyMonths", "ZeroedMonths"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		row := []string{
			sc.Name,
			intToString(sc.Parameters.HorizonYears),
			sc.FinalNominal.StringFixed(2),
			sc.FinalReal.StringFixed(2),
			sc.FinalContribution.StringFixed(2),
			sc.TotalContributed.StringFixed(2),
			sc.TotalFamilyCost.StringFixed(2),
			sc.InvestmentGrowth.StringFixed(2),
			intToString(sc.FamilyMonths),
			intToString(sc.ZeroedMonths),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
