package validators

// Form messages shown next to the offending input on the site.
const (
	MsgFirstNameRequired   = "First name is required"
	MsgLastNameRequired    = "Last name is required"
	MsgEmailRequired       = "Email is required"
	MsgEmailInvalid        = "Valid email is required"
	MsgEmailInvalidSignIn  = "Please enter a valid email"
	MsgMessageRequired     = "Message is required"
	MsgPasswordRequired    = "Password is required"
	MsgPasswordTooShort    = "Password must be at least 6 characters"
	MsgPasswordWeak        = "Password must contain uppercase, lowercase, number and be 8+ characters"
	MsgConfirmRequired     = "Please confirm your password"
	MsgPasswordsMismatch   = "Passwords do not match"
	MsgTermsRequired       = "You must agree to the terms and conditions"
	MsgPopulationRange     = "Population must be a number between 10,000 and 1,000,000"
	MsgBudgetRange         = "Budget must be a number between $1M and $50M"
	MsgCoverageRange       = "Coverage must be a number between 50 and 100"
	MsgRecordFieldsMissing = "ownerPrincipal, meta, payload required"
	MsgOwnerInvalid        = "ownerPrincipal must not contain control characters"
)

// Calculator messages.
const (
	MsgContributionNegative  = "Annual contribution must be a non-negative number"
	MsgYearsRange            = "Years must be between 1 and 60"
	MsgAnnualReturnRange     = "Annual return must be between 0 and 20"
	MsgTaxRateRange          = "Tax rate must be between 0 and 60"
	MsgBalanceNegative       = "Initial balance must be a non-negative number"
	MsgCoverageTypeInvalid   = "Coverage type must be self or family"
	MsgAgeRange              = "Age must be between 18 and 100"
	MsgExpectedCostsNegative = "Expected costs must be a non-negative number"
	MsgPlansRequired         = "At least one plan is required"
	MsgCurrentAgeRange       = "Current age must be between 18 and 100"
	MsgRetirementAgeRange    = "Retirement age must be greater than current age and at most 100"
	MsgSavingsNegative       = "Current savings must be a non-negative number"
	MsgMonthlyNegative       = "Monthly contribution must be a non-negative number"
	MsgGrowthRange           = "Contribution growth must be between 0 and 20"
	MsgWithdrawalRange       = "Withdrawal rate must be between 0 and 20"
)
