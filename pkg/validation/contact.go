// Package validation holds the declarative field rules shared by contact
// creation and update. A request is accepted only if every rule passes;
// all violations are reported together so forms can show them inline.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/adelgado/libreta/pkg/models"
)

const (
	maxNameLength    = 255
	maxEmailLength   = 200
	maxPhoneLength   = 20
	maxCompanyLength = 100
	maxNotesLength   = 1000
)

// Errors maps a field name to the messages of its violated rules.
type Errors map[string][]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}

	return "validation failed for fields: " + strings.Join(fields, ", ")
}

func (e Errors) add(field, message string) {
	e[field] = append(e[field], message)
}

// ValidateContact runs every field rule against the given params and returns
// the accumulated violations, or nil when the input is clean.
func ValidateContact(params models.ContactParams) Errors {
	errs := Errors{}

	validateName(params, errs)
	validateEmail(params, errs)
	validatePhone(params, errs)
	validateCompany(params, errs)
	validateNotes(params, errs)

	if len(errs) <= 0 {
		return nil
	}

	return errs
}

func validateName(params models.ContactParams, errs Errors) {
	if strings.TrimSpace(params.Name) == "" {
		errs.add("name", "The name field is required.")

		return
	}

	if utf8.RuneCountInString(params.Name) > maxNameLength {
		errs.add("name", fmt.Sprintf("The name may not be greater than %v characters.", maxNameLength))
	}
}

func validateEmail(params models.ContactParams, errs Errors) {
	if strings.TrimSpace(params.Email) == "" {
		errs.add("email", "The email field is required.")

		return
	}

	if _, err := mail.ParseAddress(params.Email); err != nil {
		errs.add("email", "The email must be a valid email address.")
	}

	if utf8.RuneCountInString(params.Email) > maxEmailLength {
		errs.add("email", fmt.Sprintf("The email may not be greater than %v characters.", maxEmailLength))
	}
}

func validatePhone(params models.ContactParams, errs Errors) {
	if strings.TrimSpace(params.Phone) == "" {
		errs.add("phone", "The phone field is required.")

		return
	}

	if utf8.RuneCountInString(params.Phone) > maxPhoneLength {
		errs.add("phone", fmt.Sprintf("The phone may not be greater than %v characters.", maxPhoneLength))
	}
}

func validateCompany(params models.ContactParams, errs Errors) {
	if strings.TrimSpace(params.Company) == "" {
		errs.add("company", "The company field is required.")

		return
	}

	if utf8.RuneCountInString(params.Company) > maxCompanyLength {
		errs.add("company", fmt.Sprintf("The company may not be greater than %v characters.", maxCompanyLength))
	}
}

func validateNotes(params models.ContactParams, errs Errors) {
	if utf8.RuneCountInString(params.Notes) > maxNotesLength {
		errs.add("notes", fmt.Sprintf("The notes may not be greater than %v characters.", maxNotesLength))
	}
}
