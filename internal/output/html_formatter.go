package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rpgo/savings-calculator/internal/domain"
	"github.com/rpgo/savings-calculator/internal/locale"
)

// HTMLFormatter produces a self-contained HTML report with inline SVG charts.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct":    FormatPercentage,
	"points": formatPercentPoints,
	"add":    func(i, j int) int { return i + j },
}).Parse(htmlTemplateSource))

// htmlScenario is the per-scenario view model
type htmlScenario struct {
	domain.ScenarioSummary
	Parameters        []htmlParam
	PortfolioChart    template.HTML
	ContributionChart template.HTML
	FinalNominal      string
	FinalReal         string
	FinalContribution string
	TotalContributed  string
	InvestmentGrowth  string
	TotalFamilyCost   string
}

type htmlParam struct {
	Label string
	Value string
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	loc := localeFor(results)
	rec := AnalyzeScenarios(results)

	scenarios := make([]htmlScenario, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		scenarios = append(scenarios, buildHTMLScenario(loc, sc))
	}

	labels := map[string]string{}
	for _, key := range []locale.Key{
		locale.LabelTitle, locale.LabelSimulationParameters, locale.LabelFinalValues,
		locale.LabelNominalValue, locale.LabelRealValueAdjusted, locale.LabelFinalContribution,
		locale.LabelPortfolioChart, locale.LabelContributionChart,
	} {
		labels[string(key)] = loc.Label(key)
	}

	data := struct {
		*domain.ScenarioComparison
		Lang           string
		Labels         map[string]string
		Scenarios      []htmlScenario
		Recommendation Recommendation
		BestRealValue  string
		RealChange     string
		Assumptions    []string
	}{
		ScenarioComparison: results,
		Lang:               loc.Tag().String(),
		Labels:             labels,
		Scenarios:          scenarios,
		Recommendation:     rec,
		BestRealValue:      FormatCurrency(loc, rec.FinalReal),
		RealChange:         signed(FormatCurrency(loc, rec.RealChange), rec.RealChange),
		Assumptions:        assumptionsFor(results),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildHTMLScenario(loc locale.Locale, sc domain.ScenarioSummary) htmlScenario {
	p := sc.Parameters
	params := []htmlParam{
		{loc.Label(locale.LabelInitialInvestment), loc.FormatCurrency(p.InitialBalance)},
		{loc.Label(locale.LabelInitialContribution), loc.FormatCurrency(p.InitialContribution)},
		{loc.Label(locale.LabelReturnRate), FormatPercentage(p.AnnualReturnRate)},
		{loc.Label(locale.LabelInflationRate), FormatPercentage(p.AnnualInflationRate)},
		{loc.Label(locale.LabelHorizon), intToString(p.HorizonYears)},
		{"", growthDescription(loc, p.Growth)},
	}
	if p.Family != nil {
		params = append(params,
			htmlParam{loc.Label(locale.LabelFamilyYear), familyStart(p.Family)},
			htmlParam{loc.Label(locale.LabelFamilyExpense), loc.FormatCurrency(p.Family.MonthlyExpense) + loc.Label(locale.LabelPerMonth)},
		)
	}

	view := htmlScenario{
		ScenarioSummary:   sc,
		Parameters:        params,
		FinalNominal:      FormatCurrency(loc, sc.FinalNominal),
		FinalReal:         FormatCurrency(loc, sc.FinalReal),
		FinalContribution: FormatCurrency(loc, sc.FinalContribution),
		TotalContributed:  FormatCurrency(loc, sc.TotalContributed),
		InvestmentGrowth:  FormatCurrency(loc, sc.InvestmentGrowth),
	}
	if sc.FamilyMonths > 0 {
		view.TotalFamilyCost = FormatCurrency(loc, sc.TotalFamilyCost)
	}
	if sc.Series != nil {
		view.PortfolioChart, view.ContributionChart = seriesCharts(loc, sc.Series)
	}
	return view
}

// seriesCharts draws the value and contribution charts against fractional years
func seriesCharts(loc locale.Locale, series *domain.MonthlySeries) (template.HTML, template.HTML) {
	value, contribution := loc.ValueScale(), loc.ContributionScale()
	n := series.Len()
	x := make([]float64, n)
	nominal := make([]float64, n)
	deflated := make([]float64, n)
	contrib := make([]float64, n)
	for i, p := range series.Points {
		x[i] = float64(series.BaseYear) + float64(p.Month)/12
		nominal[i] = value.Apply(p.Nominal)
		deflated[i] = value.Apply(p.Real)
		contrib[i] = contribution.Apply(p.Contribution)
	}

	portfolio := lineChart{
		Title:  loc.Label(locale.LabelPortfolioChart),
		XLabel: loc.Label(locale.LabelYears),
		YLabel: value.Label,
		X:      x,
		Lines: []chartLine{
			{Name: loc.Label(locale.LabelNominalValue), Color: colorNominal, Values: nominal},
			{Name: loc.Label(locale.LabelRealValue), Color: colorReal, Values: deflated},
		},
	}
	contributions := lineChart{
		Title:  loc.Label(locale.LabelContributionChart),
		XLabel: loc.Label(locale.LabelYears),
		YLabel: contribution.Label,
		X:      x,
		Lines: []chartLine{
			{Name: loc.Label(locale.LabelMonthlyContribution), Color: colorContribution, Values: contrib},
		},
	}
	return portfolio.SVG(), contributions.SVG()
}
