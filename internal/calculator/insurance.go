package calculator

import (
	"math"

	"github.com/MKhiriev/hefin/models"
)

// OutOfPocket returns what the insured pays beyond premiums for the expected
// yearly costs, capped at the plan's out-of-pocket maximum.
func OutOfPocket(plan models.InsurancePlan, expectedCosts float64) float64 {
	oop := expectedCosts
	if expectedCosts > plan.Deductible {
		oop = plan.Deductible + (expectedCosts-plan.Deductible)*percent(plan.Coinsurance)
	}
	return roundCents(math.Min(plan.OutOfPocketMax, oop))
}

// InsuranceCost computes the yearly cost of a single plan.
func InsuranceCost(plan models.InsurancePlan, expectedCosts float64) models.InsuranceCost {
	premium := roundCents(plan.MonthlyPremium * 12)
	oop := OutOfPocket(plan, expectedCosts)

	return models.InsuranceCost{
		Name:            plan.Name,
		AnnualPremium:   premium,
		OutOfPocket:     oop,
		TotalAnnualCost: roundCents(premium + oop),
	}
}

// CompareInsurance costs every plan and marks the cheapest. Ties go to the
// earlier plan. CheapestIndex is -1 when there are no plans.
func CompareInsurance(req models.InsuranceRequest) models.InsuranceComparison {
	out := models.InsuranceComparison{
		Plans:         make([]models.InsuranceCost, 0, len(req.Plans)),
		CheapestIndex: -1,
	}

	for i, plan := range req.Plans {
		cost := InsuranceCost(plan, req.ExpectedCosts)
		out.Plans = append(out.Plans, cost)
		if out.CheapestIndex < 0 || cost.TotalAnnualCost < out.Plans[out.CheapestIndex].TotalAnnualCost {
			out.CheapestIndex = i
		}
	}

	return out
}
