package calculator

import (
	"testing"

	"github.com/MKhiriev/hefin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetirement_ZeroReturn(t *testing.T) {
	got := Retirement(models.RetirementRequest{
		CurrentAge: 60, RetirementAge: 65, CurrentSavings: 100_000, MonthlyContribution: 1000,
	})

	require.Len(t, got.Years, 5)
	assert.Equal(t, models.RetirementYear{Age: 61, Balance: 112_000, Contributions: 12_000}, got.Years[0])
	assert.Equal(t, 65, got.Years[4].Age)
	assert.Equal(t, 160_000.0, got.FinalBalance)
	assert.Equal(t, 60_000.0, got.TotalContributions)
	assert.Equal(t, 0.0, got.TotalGrowth)
	assert.Equal(t, 533.33, got.EstimatedMonthlyIncome)
}

func TestRetirement_GrowthAndContributionIncrease(t *testing.T) {
	got := Retirement(models.RetirementRequest{
		CurrentAge: 40, RetirementAge: 42, CurrentSavings: 100_000, MonthlyContribution: 1000,
		AnnualReturn: 5, ContributionGrowth: 10, WithdrawalRate: 4,
	})

	require.Len(t, got.Years, 2)
	assert.Equal(t, 117_000.0, got.Years[0].Balance)
	assert.Equal(t, 136_050.0, got.FinalBalance)
	assert.Equal(t, 25_200.0, got.TotalContributions)
	assert.Equal(t, 10_850.0, got.TotalGrowth)
	assert.Equal(t, 453.5, got.EstimatedMonthlyIncome)
}

func TestRetirement_DefaultWithdrawalRate(t *testing.T) {
	withDefault := Retirement(models.RetirementRequest{CurrentAge: 64, RetirementAge: 65, CurrentSavings: 120_000})
	explicit := Retirement(models.RetirementRequest{CurrentAge: 64, RetirementAge: 65, CurrentSavings: 120_000, WithdrawalRate: DefaultWithdrawalRate})

	assert.Equal(t, explicit, withDefault)
	assert.Equal(t, 400.0, withDefault.EstimatedMonthlyIncome)
}
