package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adelgado/libreta/pkg/models"
)

func validParams() models.ContactParams {
	return models.ContactParams{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Phone:   "+44 20 7946 0958",
		Company: "Analytical Engines Ltd",
		Tags:    []string{"friends", "work"},
		Notes:   "Met at the computing society.",
	}
}

func TestValidateContactAcceptsValidInput(t *testing.T) {
	assert.Nil(t, ValidateContact(validParams()))
}

func TestValidateContactOptionalFields(t *testing.T) {
	params := validParams()
	params.Tags = nil
	params.Notes = ""

	assert.Nil(t, ValidateContact(params))
}

func TestValidateContactTagElementsMayBeBlank(t *testing.T) {
	params := validParams()
	params.Tags = []string{"", "work"}

	assert.Nil(t, ValidateContact(params))
}

func TestValidateContactRequiredFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*models.ContactParams)
	}{
		{"name", func(p *models.ContactParams) { p.Name = "" }},
		{"email", func(p *models.ContactParams) { p.Email = "   " }},
		{"phone", func(p *models.ContactParams) { p.Phone = "" }},
		{"company", func(p *models.ContactParams) { p.Company = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			params := validParams()
			tt.mutate(&params)

			errs := ValidateContact(params)

			require.Len(t, errs, 1)
			assert.Equal(t, []string{"The " + tt.field + " field is required."}, errs[tt.field])
		})
	}
}

func TestValidateContactMaxLengths(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*models.ContactParams)
	}{
		{"name", func(p *models.ContactParams) { p.Name = strings.Repeat("a", 256) }},
		{"phone", func(p *models.ContactParams) { p.Phone = strings.Repeat("1", 21) }},
		{"company", func(p *models.ContactParams) { p.Company = strings.Repeat("a", 101) }},
		{"notes", func(p *models.ContactParams) { p.Notes = strings.Repeat("a", 1001) }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			params := validParams()
			tt.mutate(&params)

			errs := ValidateContact(params)

			require.Len(t, errs, 1)
			require.Len(t, errs[tt.field], 1)
			assert.Contains(t, errs[tt.field][0], "may not be greater than")
		})
	}
}

func TestValidateContactCountsCharactersNotBytes(t *testing.T) {
	params := validParams()

	// 255 characters but 510 bytes; the limit is on characters.
	params.Name = strings.Repeat("é", 255)
	assert.Nil(t, ValidateContact(params))

	params.Name = strings.Repeat("é", 256)
	errs := ValidateContact(params)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"The name may not be greater than 255 characters."}, errs["name"])
}

func TestValidateContactEmailOverLengthAndValid(t *testing.T) {
	params := validParams()
	params.Email = strings.Repeat("a", 195) + "@example.com"

	errs := ValidateContact(params)

	require.Len(t, errs, 1)
	require.Len(t, errs["email"], 1)
	assert.Contains(t, errs["email"][0], "may not be greater than")
}

func TestValidateContactEmailSyntax(t *testing.T) {
	params := validParams()
	params.Email = "not-an-email"

	errs := ValidateContact(params)

	require.Len(t, errs, 1)
	assert.Equal(t, []string{"The email must be a valid email address."}, errs["email"])
}

func TestValidateContactAccumulatesAllViolations(t *testing.T) {
	errs := ValidateContact(models.ContactParams{
		Notes: strings.Repeat("a", 1001),
	})

	require.NotNil(t, errs)
	for _, field := range []string{"name", "email", "phone", "company", "notes"} {
		assert.NotEmpty(t, errs[field], "expected an error for %v", field)
	}
}
