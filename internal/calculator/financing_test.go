package calculator

import (
	"testing"

	"github.com/MKhiriev/hefin/models"
	"github.com/stretchr/testify/assert"
)

func TestFinancing(t *testing.T) {
	tests := []struct {
		name       string
		population float64
		budget     float64
		coverage   float64
		want       models.FinancingResults
	}{
		{
			name:       "mid range",
			population: 100_000, budget: 10_000_000, coverage: 80,
			want: models.FinancingResults{
				CostSavings:         2_300_000,
				CoverageImprovement: 5,
				AdditionalPeople:    5_000,
				EfficiencyMetrics: models.EfficiencyMetrics{
					AdministrativeEfficiency: 95,
					ResourceAllocation:       92,
					ProviderPerformance:      73,
				},
			},
		},
		{
			name:       "lower bounds",
			population: 10_000, budget: 1_000_000, coverage: 50,
			want: models.FinancingResults{
				CostSavings:         230_000,
				CoverageImprovement: 13,
				AdditionalPeople:    1_300,
				EfficiencyMetrics: models.EfficiencyMetrics{
					AdministrativeEfficiency: 77,
					ResourceAllocation:       88,
					ProviderPerformance:      70,
				},
			},
		},
		{
			name:       "caps applied",
			population: 1_000_000, budget: 50_000_000, coverage: 100,
			want: models.FinancingResults{
				CostSavings:         11_500_000,
				CoverageImprovement: 0,
				AdditionalPeople:    0,
				EfficiencyMetrics: models.EfficiencyMetrics{
					AdministrativeEfficiency: 95,
					ResourceAllocation:       95,
					ProviderPerformance:      90,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Financing(tt.population, tt.budget, tt.coverage))
		})
	}
}
