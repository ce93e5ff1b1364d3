package calculator

import (
	"math"

	"github.com/MKhiriev/hefin/models"
)

const (
	costSavingsRate        = 0.23
	maxCoverageImprovement = 25
	maxAdministrative      = 95
	maxResourceAllocation  = 98
	maxProviderPerformance = 90
)

// Financing computes the health financing optimization for a population of
// people, a yearly budget in dollars and a coverage percentage.
func Financing(population, budget, coverage float64) models.FinancingResults {
	coverageImprovement := math.Min(maxCoverageImprovement, math.Round((100-coverage)*0.25))

	return models.FinancingResults{
		CostSavings:         int64(math.Round(budget * costSavingsRate)),
		CoverageImprovement: int64(coverageImprovement),
		AdditionalPeople:    int64(math.Floor(population * coverageImprovement / 100)),
		EfficiencyMetrics: models.EfficiencyMetrics{
			AdministrativeEfficiency: int64(math.Min(maxAdministrative, math.Round(75+budget/1e6*2))),
			ResourceAllocation:       int64(math.Min(maxResourceAllocation, math.Round(80+coverage/10*1.5))),
			ProviderPerformance:      int64(math.Min(maxProviderPerformance, math.Round(70+population/1e5*3))),
		},
	}
}
