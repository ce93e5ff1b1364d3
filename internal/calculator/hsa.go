package calculator

import (
	"math"

	"github.com/MKhiriev/hefin/models"
)

// Yearly HSA contribution limits.
const (
	HSALimitSelf     = 4150
	HSALimitFamily   = 8300
	HSACatchUp       = 1000
	HSACatchUpMinAge = 55
)

// HSALimit returns the yearly contribution limit for the coverage tier and
// the account holder's age. An empty coverage means self-only.
func HSALimit(coverage models.HSACoverage, age int) float64 {
	limit := float64(HSALimitSelf)
	if coverage == models.HSACoverageFamily {
		limit = HSALimitFamily
	}
	if age >= HSACatchUpMinAge {
		limit += HSACatchUp
	}
	return limit
}

// HSA projects an HSA balance with yearly end-of-year contributions
// compounded at the annual return.
func HSA(req models.HSARequest) models.HSAResult {
	r := percent(req.AnnualReturn)
	n := float64(req.Years)
	b := req.InitialBalance
	c := req.AnnualContribution

	var fv float64
	if r == 0 {
		fv = b + c*n
	} else {
		g := math.Pow(1+r, n)
		fv = b*g + c*(g-1)/r
	}
	fv = roundCents(fv)

	contributions := roundCents(c * n)
	limit := HSALimit(req.CoverageType, req.Age)

	return models.HSAResult{
		FutureValue:        fv,
		TotalContributions: contributions,
		InvestmentGrowth:   roundCents(fv - b - c*n),
		TaxSavings:         roundCents(c * n * percent(req.TaxRate)),
		AnnualLimit:        limit,
		OverLimit:          c > limit,
	}
}
