package output

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/rpgo/savings-calculator/internal/calculation"
	"github.com/rpgo/savings-calculator/internal/locale"
)

// SweepHTMLReport generates an HTML report charting final values across a sweep
type SweepHTMLReport struct {
	Scenario string
	Field    calculation.SweepField
	Points   []calculation.SweepPoint
	Locale   locale.Locale
}

var sweepTemplate = template.Must(template.New("sweep").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; color: #2c3e50; max-width: 960px; margin: 0 auto; padding: 24px; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid #ecf0f1; }
td.num { text-align: right; }
.chart { width: 100%; height: auto; }
.chart .grid { stroke: #ecf0f1; }
.chart .tick { font-size: 11px; fill: #7f8c8d; }
.chart .axis-label, .chart .legend { font-size: 12px; }
.chart .chart-title { font-size: 14px; font-weight: bold; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Sensitivity}}</p>
{{.Chart}}
<table>
<tr><th>{{.Field}}</th><th>{{.NominalLabel}}</th><th>{{.RealLabel}}</th></tr>
{{- range .Rows}}
<tr><td>{{.Value}}</td><td class="num">{{.Nominal}}</td><td class="num">{{.Real}}</td></tr>
{{- end}}
</table>
</body>
</html>
`))

type sweepRow struct {
	Value   string
	Nominal string
	Real    string
}

// GenerateHTMLReport writes the report, creating the output directory if needed
func (s *SweepHTMLReport) GenerateHTMLReport(outputPath string) error {
	// Create output directory if it doesn't exist
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	content, err := s.Render()
	if err != nil {
		return err
	}

	// Write to file
	if err := os.WriteFile(outputPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write HTML report: %w", err)
	}

	return nil
}

// Render returns the report markup
func (s *SweepHTMLReport) Render() ([]byte, error) {
	loc := s.Locale
	if loc == nil {
		loc = locale.DefaultLocale
	}
	scale := loc.ValueScale()

	x := make([]float64, len(s.Points))
	nominal := make([]float64, len(s.Points))
	deflated := make([]float64, len(s.Points))
	rows := make([]sweepRow, len(s.Points))
	for i, pt := range s.Points {
		x[i] = pt.Value * 100
		nominal[i] = scale.Apply(pt.FinalNominal)
		deflated[i] = scale.Apply(pt.FinalReal)
		rows[i] = sweepRow{
			Value:   FormatPercentage(pt.Value),
			Nominal: loc.FormatCurrency(pt.FinalNominal),
			Real:    loc.FormatCurrency(pt.FinalReal),
		}
	}

	chart := lineChart{
		Title:  fmt.Sprintf("%s: %s", s.Scenario, loc.Label(locale.LabelFinalValues)),
		XLabel: string(s.Field) + " (%)",
		YLabel: scale.Label,
		X:      x,
		Lines: []chartLine{
			{Name: loc.Label(locale.LabelNominalValue), Color: colorNominal, Values: nominal},
			{Name: loc.Label(locale.LabelRealValue), Color: colorReal, Values: deflated},
		},
	}

	data := struct {
		Lang         string
		Title        string
		Field        string
		NominalLabel string
		RealLabel    string
		Sensitivity  string
		Chart        template.HTML
		Rows         []sweepRow
	}{
		Lang:         loc.Tag().String(),
		Title:        fmt.Sprintf("%s sweep: %s", s.Field, s.Scenario),
		Field:        string(s.Field),
		NominalLabel: loc.Label(locale.LabelNominalValue),
		RealLabel:    loc.Label(locale.LabelRealValueAdjusted),
		Sensitivity:  s.sensitivity(),
		Chart:        chart.SVG(),
		Rows:         rows,
	}

	var buf bytes.Buffer
	if err := sweepTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sensitivity grades the spread of final real values relative to their median
func (s *SweepHTMLReport) sensitivity() string {
	if len(s.Points) < 2 {
		return "Sensitivity: single run"
	}
	values := make([]float64, len(s.Points))
	for i, pt := range s.Points {
		values[i] = pt.FinalReal
	}
	sort.Float64s(values)
	median := values[len(values)/2]
	if median == 0 {
		return "Sensitivity: unable to determine"
	}

	spread := math.Abs(values[len(values)-1]-values[0]) / math.Abs(median)
	switch {
	case spread < 0.5:
		return "Sensitivity: Low - the final real value is stable across the range"
	case spread < 1.0:
		return "Sensitivity: Moderate - the final real value varies with " + string(s.Field)
	default:
		return "Sensitivity: High - the final real value depends heavily on " + string(s.Field)
	}
}
