package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWaitlist() map[string]string {
	return map[string]string{
		"to_email":          "team@example.com",
		"subject":           "New People Directory Waitlist Signup",
		"user_name":         "Ada",
		"user_email":        "ada@example.com",
		"submitter_name":    "Ada",
		"submitter_email":   "ada@example.com",
		"submitter_message": "hello",
		"submission_date":   "2024-01-02T03:04:05.000Z",
	}
}

func TestValidate_Waitlist(t *testing.T) {
	assert.NoError(t, Validate(Waitlist, validWaitlist()))
}

func TestValidate_MissingField(t *testing.T) {
	params := validWaitlist()
	delete(params, "user_email")

	err := Validate(Waitlist, params)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
	assert.Equal(t, Waitlist, validationErr.Schema)
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "user_email")
}

func TestValidate_EmptyRequiredValue(t *testing.T) {
	params := map[string]string{
		"to_email":          "team@example.com",
		"company_name":      "",
		"company_website":   "https://acme.io",
		"company_twitter":   "Not provided",
		"submitter_name":    "Ada",
		"submitter_email":   "ada@example.com",
		"submitter_message": "hi",
		"submission_date":   "2024-01-02T03:04:05.000Z",
		"subject":           "New Company Submission: ",
	}

	var validationErr *ValidationError
	require.ErrorAs(t, Validate(CompanySubmission, params), &validationErr)
	assert.Equal(t, "company_name", validationErr.Errors[0].Field)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nope", validWaitlist())
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "unknown schema")
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type":"object","required":["name"],"properties":{"name":{"type":"string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name":"x"}`))
	assert.Error(t, ValidateJSONString(schema, `{"name":1}`))

	err := ValidateJSONString(`{not json`, `{}`)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
