package locale

// Key identifies a display label
type Key string

const (
	LabelTitle                Key = "title"
	LabelInputParameters      Key = "input_parameters"
	LabelInitialInvestment    Key = "initial_investment"
	LabelInitialContribution  Key = "initial_contribution"
	LabelReturnRate           Key = "return_rate"
	LabelInflationRate        Key = "inflation_rate"
	LabelHorizon              Key = "horizon"
	LabelGrowthRate           Key = "growth_rate"
	LabelRaise                Key = "raise"
	LabelFamilyYear           Key = "family_year"
	LabelFamilyExpense        Key = "family_expense"
	LabelPerMonth             Key = "per_month"
	LabelPortfolioChart       Key = "portfolio_chart"
	LabelContributionChart    Key = "contribution_chart"
	LabelSimulationParameters Key = "simulation_parameters"
	LabelFinalValues          Key = "final_values"
	LabelNominalValue         Key = "nominal_value"
	LabelRealValue            Key = "real_value"
	LabelRealValueAdjusted    Key = "real_value_adjusted"
	LabelMonthlyContribution  Key = "monthly_contribution"
	LabelFinalContribution    Key = "final_contribution"
	LabelYears                Key = "years"
	LabelValue                Key = "value"
)

func englishLabels(symbol string) map[Key]string {
	return map[Key]string{
		LabelTitle:                "Retirement Savings Simulation",
		LabelInputParameters:      "Input Parameters",
		LabelInitialInvestment:    "Initial Investment (" + symbol + ")",
		LabelInitialContribution:  "Initial Monthly Contribution (" + symbol + ")",
		LabelReturnRate:           "Annual Return Rate",
		LabelInflationRate:        "Inflation Rate",
		LabelHorizon:              "Years to Retirement",
		LabelGrowthRate:           "Annual Income Growth Rate",
		LabelRaise:                "Periodic Raise",
		LabelFamilyYear:           "Family Growth Year",
		LabelFamilyExpense:        "Family Growth Expense (" + symbol + "/month)",
		LabelPerMonth:             "/month",
		LabelPortfolioChart:       "Portfolio Value Over Time",
		LabelContributionChart:    "Monthly Contribution Over Time",
		LabelSimulationParameters: "Simulation Parameters",
		LabelFinalValues:          "Final Values",
		LabelNominalValue:         "Nominal Value",
		LabelRealValue:            "Real Value",
		LabelRealValueAdjusted:    "Real Value (adjusted for inflation)",
		LabelMonthlyContribution:  "Monthly Contribution",
		LabelFinalContribution:    "Final Monthly Contribution",
		LabelYears:                "Years",
		LabelValue:                "Value",
	}
}

var japaneseLabels = map[Key]string{
	LabelTitle:                "退職貯蓄シミュレーション",
	LabelInputParameters:      "入力パラメータ",
	LabelInitialInvestment:    "初期投資 (¥)",
	LabelInitialContribution:  "初期月額積立 (¥)",
	LabelReturnRate:           "年間リターン率",
	LabelInflationRate:        "インフレ率",
	LabelHorizon:              "退職までの年数",
	LabelGrowthRate:           "年間収入成長率",
	LabelRaise:                "定期昇給",
	LabelFamilyYear:           "家族成長の年",
	LabelFamilyExpense:        "家族成長の費用 (¥/月)",
	LabelPerMonth:             "/月",
	LabelPortfolioChart:       "ポートフォリオ価値の推移",
	LabelContributionChart:    "月々の積立の推移",
	LabelSimulationParameters: "シミュレーションパラメータ",
	LabelFinalValues:          "最終的な価値",
	LabelNominalValue:         "名目価値",
	LabelRealValue:            "実質価値",
	LabelRealValueAdjusted:    "実質価値 (インフレ調整後)",
	LabelMonthlyContribution:  "月々の積立",
	LabelFinalContribution:    "最終月額積立",
	LabelYears:                "年",
	LabelValue:                "価値",
}
