package models

// FinancingRequest is the health financing optimization input. Fields are
// pointers so that missing values can be told apart from zeros.
type FinancingRequest struct {
	Population *float64 `json:"population"`
	Budget     *float64 `json:"budget"`
	Coverage   *float64 `json:"coverage"`
}

// FinancingResults is the health financing optimization output.
type FinancingResults struct {
	CostSavings         int64             `json:"costSavings"`
	CoverageImprovement int64             `json:"coverageImprovement"`
	AdditionalPeople    int64             `json:"additionalPeople"`
	EfficiencyMetrics   EfficiencyMetrics `json:"efficiencyMetrics"`
}

// EfficiencyMetrics are percentage scores derived from the financing inputs.
type EfficiencyMetrics struct {
	AdministrativeEfficiency int64 `json:"administrativeEfficiency"`
	ResourceAllocation       int64 `json:"resourceAllocation"`
	ProviderPerformance      int64 `json:"providerPerformance"`
}

// HSACoverage is the coverage tier that determines the HSA contribution limit.
type HSACoverage string

const (
	HSACoverageSelf   HSACoverage = "self"
	HSACoverageFamily HSACoverage = "family"
)

// HSARequest is the health savings account projection input. Rates are
// percentages.
type HSARequest struct {
	AnnualContribution float64     `json:"annualContribution"`
	Years              int         `json:"years"`
	AnnualReturn       float64     `json:"annualReturn"`
	TaxRate            float64     `json:"taxRate"`
	InitialBalance     float64     `json:"initialBalance"`
	CoverageType       HSACoverage `json:"coverageType"`
	Age                int         `json:"age"`
}

// HSAResult is the health savings account projection output.
type HSAResult struct {
	FutureValue        float64 `json:"futureValue"`
	TotalContributions float64 `json:"totalContributions"`
	InvestmentGrowth   float64 `json:"investmentGrowth"`
	TaxSavings         float64 `json:"taxSavings"`
	AnnualLimit        float64 `json:"annualLimit"`
	OverLimit          bool    `json:"overLimit"`
}

// InsurancePlan describes one plan's cost parameters. Coinsurance is a
// percentage.
type InsurancePlan struct {
	Name           string  `json:"name"`
	MonthlyPremium float64 `json:"monthlyPremium"`
	Deductible     float64 `json:"deductible"`
	Coinsurance    float64 `json:"coinsurance"`
	OutOfPocketMax float64 `json:"outOfPocketMax"`
}

// InsuranceRequest compares plans against expected yearly medical costs.
type InsuranceRequest struct {
	ExpectedCosts float64         `json:"expectedCosts"`
	Plans         []InsurancePlan `json:"plans"`
}

// InsuranceCost is the yearly cost of a single plan.
type InsuranceCost struct {
	Name            string  `json:"name"`
	AnnualPremium   float64 `json:"annualPremium"`
	OutOfPocket     float64 `json:"outOfPocket"`
	TotalAnnualCost float64 `json:"totalAnnualCost"`
}

// InsuranceComparison lists plan costs and the cheapest plan.
type InsuranceComparison struct {
	Plans         []InsuranceCost `json:"plans"`
	CheapestIndex int             `json:"cheapestIndex"`
}

// RetirementRequest is the retirement projection input. Rates are
// percentages; a zero WithdrawalRate means the default 4%.
type RetirementRequest struct {
	CurrentAge          int     `json:"currentAge"`
	RetirementAge       int     `json:"retirementAge"`
	CurrentSavings      float64 `json:"currentSavings"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	AnnualReturn        float64 `json:"annualReturn"`
	ContributionGrowth  float64 `json:"contributionGrowth"`
	WithdrawalRate      float64 `json:"withdrawalRate"`
}

// RetirementYear is one row of a retirement projection.
type RetirementYear struct {
	Age           int     `json:"age"`
	Balance       float64 `json:"balance"`
	Contributions float64 `json:"contributions"`
}

// RetirementProjection is the retirement projection output.
type RetirementProjection struct {
	Years                  []RetirementYear `json:"years"`
	FinalBalance           float64          `json:"finalBalance"`
	TotalContributions     float64          `json:"totalContributions"`
	TotalGrowth            float64          `json:"totalGrowth"`
	EstimatedMonthlyIncome float64          `json:"estimatedMonthlyIncome"`
}
