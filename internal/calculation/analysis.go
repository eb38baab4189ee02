package calculation

import (
	"fmt"

	"github.com/rpgo/savings-calculator/internal/domain"
	"github.com/rpgo/savings-calculator/pkg/decimal"
)

// Summarize derives the headline metrics of a finished projection
func Summarize(name string, params domain.SimulationParameters, series *domain.MonthlySeries) domain.ScenarioSummary {
	final := series.Final()

	var applied, gross []float64
	familyMonths, zeroedMonths := 0, 0
	for _, p := range series.Points[1:] {
		applied = append(applied, p.Applied)
		gross = append(gross, p.Contribution)
		if params.Family.Active(p.Month) {
			familyMonths++
			if p.Applied == 0 {
				zeroedMonths++
			}
		}
	}

	totalContributed := decimal.Sum(applied)
	totalGross := decimal.Sum(gross)
	finalNominal := decimal.NewMoney(final.Nominal)
	growth := finalNominal.Sub(decimal.NewMoney(params.InitialBalance)).Sub(totalContributed)

	return domain.ScenarioSummary{
		Name:              name,
		Parameters:        params,
		FinalNominal:      finalNominal.Decimal,
		FinalReal:         decimal.NewMoney(final.Real).Decimal,
		FinalContribution: decimal.NewMoney(final.Contribution).Decimal,
		TotalContributed:  totalContributed.Decimal,
		TotalFamilyCost:   totalGross.Sub(totalContributed).Decimal,
		InvestmentGrowth:  growth.Decimal,
		FamilyMonths:      familyMonths,
		ZeroedMonths:      zeroedMonths,
		Assumptions:       params.GenerateAssumptions(),
		Series:            series,
	}
}

// ModelAssumptions lists the modeling conventions shared by every scenario
func ModelAssumptions(baseYear int) []string {
	return []string{
		"Annual rates convert to monthly rates by compounding: (1+annual)^(1/12) - 1",
		"Contributions are added at the end of each month, after that month's return",
		fmt.Sprintf("Real values are expressed in %d purchasing power", baseYear),
		"A family expense reduces the monthly contribution but never below zero",
	}
}
