package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/hefin/models"
)

// Field names for scoped validation of sign-in payloads.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// FormValidator implements Validator for every payload the HEFIN API
// accepts. Failures are returned as *ValidationError.
type FormValidator struct {
	structs *structValidator
}

func NewFormValidator() Validator {
	return &FormValidator{structs: newStructValidator()}
}

func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ContactRequest:
		return v.validateContact(value)
	case *models.ContactRequest:
		return v.validateContact(*value)

	case models.ConsultationRequest:
		return v.validateConsultation(value)
	case *models.ConsultationRequest:
		return v.validateConsultation(*value)

	case models.FinancingRequest:
		return v.validateFinancing(value)
	case *models.FinancingRequest:
		return v.validateFinancing(*value)

	case models.RegisterRequest:
		return v.validateRegister(value)
	case *models.RegisterRequest:
		return v.validateRegister(*value)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.Patient:
		return v.structs.check(value)
	case *models.Patient:
		return v.structs.check(*value)

	case models.RecordRequest:
		return v.validateRecord(value)
	case *models.RecordRequest:
		return v.validateRecord(*value)

	case models.HSARequest:
		return v.validateHSA(value)
	case *models.HSARequest:
		return v.validateHSA(*value)

	case models.InsuranceRequest:
		return v.validateInsurance(value)
	case *models.InsuranceRequest:
		return v.validateInsurance(*value)

	case models.RetirementRequest:
		return v.validateRetirement(value)
	case *models.RetirementRequest:
		return v.validateRetirement(*value)

	default:
		return ErrUnsupportedType
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (v *FormValidator) validateContact(req models.ContactRequest) error {
	ve := &ValidationError{}

	if blank(req.FirstName) {
		ve.add(MsgFirstNameRequired)
	}
	if blank(req.LastName) {
		ve.add(MsgLastNameRequired)
	}
	if req.Email == "" {
		ve.add(MsgEmailRequired)
	} else if !ValidateEmail(req.Email) {
		ve.add(MsgEmailInvalid)
	}
	if blank(req.Message) {
		ve.add(MsgMessageRequired)
	}

	return ve.orNil()
}

func (v *FormValidator) validateConsultation(req models.ConsultationRequest) error {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Service = strings.TrimSpace(req.Service)
	req.PreferredDate = strings.TrimSpace(req.PreferredDate)

	return v.structs.check(req)
}

func inRange(value *float64, lo, hi float64) bool {
	return value != nil && *value >= lo && *value <= hi
}

func (v *FormValidator) validateFinancing(req models.FinancingRequest) error {
	ve := &ValidationError{}

	if !inRange(req.Population, 10_000, 1_000_000) {
		ve.add(MsgPopulationRange)
	}
	if !inRange(req.Budget, 1_000_000, 50_000_000) {
		ve.add(MsgBudgetRange)
	}
	if !inRange(req.Coverage, 50, 100) {
		ve.add(MsgCoverageRange)
	}

	return ve.orNil()
}

func (v *FormValidator) validateRegister(req models.RegisterRequest) error {
	ve := &ValidationError{}

	if blank(req.FirstName) {
		ve.add(MsgFirstNameRequired)
	}
	if blank(req.LastName) {
		ve.add(MsgLastNameRequired)
	}
	if req.Email == "" {
		ve.add(MsgEmailRequired)
	} else if !ValidateEmail(req.Email) {
		ve.add(MsgEmailInvalidSignIn)
	}
	if req.Password == "" {
		ve.add(MsgPasswordRequired)
	} else if !CheckPassword(req.Password).IsStrong() {
		ve.add(MsgPasswordWeak)
	}
	if req.ConfirmPassword == "" {
		ve.add(MsgConfirmRequired)
	} else if req.Password != req.ConfirmPassword {
		ve.add(MsgPasswordsMismatch)
	}
	if !req.TermsAgree {
		ve.add(MsgTermsRequired)
	}

	return ve.orNil()
}

func (v *FormValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	ve := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if req.Email == "" {
				ve.add(MsgEmailRequired)
			} else if !ValidateEmail(req.Email) {
				ve.add(MsgEmailInvalidSignIn)
			}
		case FieldPassword:
			if req.Password == "" {
				ve.add(MsgPasswordRequired)
			} else if !ValidSignInPassword(req.Password) {
				ve.add(MsgPasswordTooShort)
			}
		default:
			return ErrUnknownField
		}
	}

	return ve.orNil()
}

func (v *FormValidator) validateRecord(req models.RecordRequest) error {
	if blank(req.OwnerPrincipal) || blank(req.Meta) || emptyJSON(req.Payload) {
		return &ValidationError{Errors: []string{MsgRecordFieldsMissing}}
	}
	if strings.ContainsFunc(req.OwnerPrincipal, unicode.IsControl) {
		return &ValidationError{Errors: []string{MsgOwnerInvalid}}
	}
	return nil
}

// emptyJSON reports whether raw is absent or one of null, false, 0 and "".
func emptyJSON(raw json.RawMessage) bool {
	if len(bytes.TrimSpace(raw)) == 0 {
		return true
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return false
	}

	switch value := value.(type) {
	case nil:
		return true
	case bool:
		return !value
	case string:
		return value == ""
	case float64:
		return value == 0
	}
	return false
}

func (v *FormValidator) validateHSA(req models.HSARequest) error {
	ve := &ValidationError{}

	if req.AnnualContribution < 0 {
		ve.add(MsgContributionNegative)
	}
	if req.Years < 1 || req.Years > 60 {
		ve.add(MsgYearsRange)
	}
	if req.AnnualReturn < 0 || req.AnnualReturn > 20 {
		ve.add(MsgAnnualReturnRange)
	}
	if req.TaxRate < 0 || req.TaxRate > 60 {
		ve.add(MsgTaxRateRange)
	}
	if req.InitialBalance < 0 {
		ve.add(MsgBalanceNegative)
	}
	switch req.CoverageType {
	case "", models.HSACoverageSelf, models.HSACoverageFamily:
	default:
		ve.add(MsgCoverageTypeInvalid)
	}
	if req.Age != 0 && (req.Age < 18 || req.Age > 100) {
		ve.add(MsgAgeRange)
	}

	return ve.orNil()
}

func (v *FormValidator) validateInsurance(req models.InsuranceRequest) error {
	ve := &ValidationError{}

	if req.ExpectedCosts < 0 {
		ve.add(MsgExpectedCostsNegative)
	}
	if len(req.Plans) == 0 {
		ve.add(MsgPlansRequired)
	}
	for i, plan := range req.Plans {
		prefix := fmt.Sprintf("Plan %d: ", i+1)
		if plan.MonthlyPremium < 0 {
			ve.add(prefix + "monthly premium must be a non-negative number")
		}
		if plan.Deductible < 0 {
			ve.add(prefix + "deductible must be a non-negative number")
		}
		if plan.Coinsurance < 0 || plan.Coinsurance > 100 {
			ve.add(prefix + "coinsurance must be between 0 and 100")
		}
		if plan.OutOfPocketMax < plan.Deductible {
			ve.add(prefix + "out-of-pocket maximum must not be less than the deductible")
		}
	}

	return ve.orNil()
}

func (v *FormValidator) validateRetirement(req models.RetirementRequest) error {
	ve := &ValidationError{}

	if req.CurrentAge < 18 || req.CurrentAge > 100 {
		ve.add(MsgCurrentAgeRange)
	}
	if req.RetirementAge <= req.CurrentAge || req.RetirementAge > 100 {
		ve.add(MsgRetirementAgeRange)
	}
	if req.CurrentSavings < 0 {
		ve.add(MsgSavingsNegative)
	}
	if req.MonthlyContribution < 0 {
		ve.add(MsgMonthlyNegative)
	}
	if req.AnnualReturn < 0 || req.AnnualReturn > 20 {
		ve.add(MsgAnnualReturnRange)
	}
	if req.ContributionGrowth < 0 || req.ContributionGrowth > 20 {
		ve.add(MsgGrowthRange)
	}
	if req.WithdrawalRate < 0 || req.WithdrawalRate > 20 {
		ve.add(MsgWithdrawalRange)
	}

	return ve.orNil()
}
