package calculator

import "github.com/MKhiriev/hefin/models"

// DefaultWithdrawalRate is used when the request leaves the rate at zero.
const DefaultWithdrawalRate = 4

// maxProjectionYears bounds the yearly loop.
const maxProjectionYears = 100

// Retirement projects savings from the current age to the retirement age.
// Each year the balance grows by the annual return and receives twelve
// monthly contributions, after which the monthly contribution grows by the
// contribution growth rate.
func Retirement(req models.RetirementRequest) models.RetirementProjection {
	r := percent(req.AnnualReturn)
	growth := percent(req.ContributionGrowth)
	withdrawal := req.WithdrawalRate
	if withdrawal == 0 {
		withdrawal = DefaultWithdrawalRate
	}

	years := req.RetirementAge - req.CurrentAge
	if years < 0 {
		years = 0
	}
	if years > maxProjectionYears {
		years = maxProjectionYears
	}

	balance := req.CurrentSavings
	monthly := req.MonthlyContribution
	var contributions float64

	rows := make([]models.RetirementYear, 0, years)
	for i := 0; i < years; i++ {
		balance = balance*(1+r) + 12*monthly
		contributions += 12 * monthly
		monthly *= 1 + growth

		rows = append(rows, models.RetirementYear{
			Age:           req.CurrentAge + i + 1,
			Balance:       roundCents(balance),
			Contributions: roundCents(contributions),
		})
	}

	final := roundCents(balance)

	return models.RetirementProjection{
		Years:                  rows,
		FinalBalance:           final,
		TotalContributions:     roundCents(contributions),
		TotalGrowth:            roundCents(final - req.CurrentSavings - contributions),
		EstimatedMonthlyIncome: roundCents(final * percent(withdrawal) / 12),
	}
}
