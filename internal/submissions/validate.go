// Package submissions implements the logging-only company submission endpoint logic:
// field validation in a fixed order and recording of accepted submissions.
//
// Accepted submissions are logged and stored, never emailed.
package submissions

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/jonathan/london-crypto-directory/internal/types"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError is the first failing check for a submission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// Validate checks required fields in declared order, then the email shape, then
// the website URL. The first failure wins.
func Validate(req *types.CompanySubmissionRequest) error {
	required := []struct {
		field string
		value string
	}{
		{"companyName", req.CompanyName},
		{"companyWebsite", req.CompanyWebsite},
		{"yourName", req.YourName},
		{"yourEmail", req.YourEmail},
		{"message", req.Message},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Message: r.field + " is required"}
		}
	}

	if !emailPattern.MatchString(req.YourEmail) {
		return &ValidationError{Field: "yourEmail", Message: "Invalid email format"}
	}

	if !IsURL(req.CompanyWebsite) {
		return &ValidationError{Field: "companyWebsite", Message: "Invalid website URL format"}
	}

	return nil
}

// IsURL reports whether s parses as an absolute URL.
func IsURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Scheme == "" {
		return false
	}
	return u.Host != "" || u.Opaque != ""
}
