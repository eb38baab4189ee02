package output

import (
	"encoding/json"

	"github.com/rpgo/savings-calculator/internal/domain"
)

// JSONFormatter serializes the scenario comparison as pretty-printed JSON,
// with the recommendation alongside the scenarios.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	doc := struct {
		*domain.ScenarioComparison
		Recommendation *Recommendation `json:"recommendation,omitempty"`
	}{ScenarioComparison: results}
	if rec := AnalyzeScenarios(results); rec.ScenarioName != "" {
		doc.Recommendation = &rec
	}
	return json.MarshalIndent(doc, "", "  ")
}
