package accounts

import (
	"unicode/utf8"

	"github.com/dmitrijs2005/collabboard/internal/validation"
)

// MinPasswordLength applies to registration and password change.
const MinPasswordLength = 6

// Violation codes. They double as message keys in the i18n catalog.
const (
	CodeRequiredEmail           = "required.email"
	CodeRequiredPassword        = "required.password"
	CodeRequiredConfirmPassword = "required.confirmPassword"
	CodeRequiredType            = "required.type"
	CodeRequiredUniversityName  = "required.universityName"
	CodeRequiredCompanyName     = "required.companyName"
	CodeRequiredIndustry        = "required.industry"
	CodeRequiredContactPerson   = "required.contactPerson"
	CodeInvalidType             = "type.invalid"
	CodeInvalidEmail            = "email.invalid"
	CodePasswordTooShort        = "password.too_short"
	CodePasswordMismatch        = "password.mismatch"
	CodeInvalidPhone            = "phone.invalid"
	CodeBlankUniversityName     = "universityName.blank"
	CodeBlankCompanyName        = "companyName.blank"
	CodeNameWrongType           = "name.wrong_type"
)

func passwordTooShort(p string) bool {
	return utf8.RuneCountInString(p) < MinPasswordLength
}

// validateDraft reports every violated registration rule.
func validateDraft(d Draft) validation.Violations {
	var v validation.Violations

	v.Required(d.Email, CodeRequiredEmail)
	v.Required(d.Password, CodeRequiredPassword)
	v.Required(d.ConfirmPassword, CodeRequiredConfirmPassword)
	v.Required(string(d.Kind), CodeRequiredType)

	switch d.Kind {
	case KindUniversity:
		v.Required(d.UniversityName, CodeRequiredUniversityName)
		v.Required(d.ContactPerson, CodeRequiredContactPerson)
	case KindCompany:
		v.Required(d.CompanyName, CodeRequiredCompanyName)
		v.Required(d.Industry, CodeRequiredIndustry)
		v.Required(d.ContactPerson, CodeRequiredContactPerson)
	case "":
	default:
		v.Add(CodeInvalidType)
	}

	if d.Email != "" && !validation.IsValidEmail(d.Email) {
		v.Add(CodeInvalidEmail)
	}
	if d.Password != "" && passwordTooShort(d.Password) {
		v.Add(CodePasswordTooShort)
	}
	if d.Password != d.ConfirmPassword {
		v.Add(CodePasswordMismatch)
	}
	if d.Phone != "" && !validation.IsValidPhone(d.Phone) {
		v.Add(CodeInvalidPhone)
	}

	return v
}

// validatePatch checks a profile patch against the account it targets.
func validatePatch(kind Kind, p Patch) validation.Violations {
	var v validation.Violations

	if p.Email != nil && !validation.IsValidEmail(*p.Email) {
		v.Add(CodeInvalidEmail)
	}
	if p.Phone != nil && *p.Phone != "" && !validation.IsValidPhone(*p.Phone) {
		v.Add(CodeInvalidPhone)
	}

	switch kind {
	case KindUniversity:
		if p.UniversityName != nil && validation.IsBlank(*p.UniversityName) {
			v.Add(CodeBlankUniversityName)
		}
		if p.CompanyName != nil || p.Industry != nil {
			v.Add(CodeNameWrongType)
		}
	case KindCompany:
		if p.CompanyName != nil && validation.IsBlank(*p.CompanyName) {
			v.Add(CodeBlankCompanyName)
		}
		if p.UniversityName != nil {
			v.Add(CodeNameWrongType)
		}
	}

	return v
}
