package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/savings-calculator/internal/domain"
)

// CSVDetailedExporter writes every month of every scenario. Value columns use
// the locale's value scale and contribution columns its contribution scale,
// with the scale named in the header.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	loc := localeFor(results)
	value, contribution := loc.ValueScale(), loc.ContributionScale()

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Scenario", "Month", "Year",
		"Nominal " + value.Label,
		"Real " + value.Label,
		contribution.Label,
		"Applied " + contribution.Label,
		"Family Active",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		if sc.Series == nil {
			continue
		}
		for _, p := range sc.Series.Points {
			row := []string{
				sc.Name,
				intToString(p.Month),
				intToString(p.Year),
				formatScaled(p.Nominal, value, 6),
				formatScaled(p.Real, value, 6),
				formatScaled(p.Contribution, contribution, 6),
				formatScaled(p.Applied, contribution, 6),
				boolToString(sc.Parameters.Family.Active(p.Month)),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
