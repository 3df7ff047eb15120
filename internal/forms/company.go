package forms

import (
	"context"
	"strings"

	"github.com/jonathan/london-crypto-directory/internal/relay"
	"github.com/jonathan/london-crypto-directory/internal/schemas"
	"github.com/jonathan/london-crypto-directory/internal/types"
)

const (
	companySuccess = "Thank you! Your submission has been sent successfully."
	companyFailure = "There was an error submitting your form. Please try again."
)

// CompanyForm is the "Submit a Company" form.
type CompanyForm struct {
	form
}

// NewCompanyForm creates a company submission form delivering to toEmail.
func NewCompanyForm(sender relay.Sender, toEmail string) *CompanyForm {
	f := &CompanyForm{}
	f.setup("company submission", sender, toEmail)
	return f
}

// Submit validates and relays one company submission.
func (f *CompanyForm) Submit(ctx context.Context, req types.CompanySubmissionRequest) (Outcome, error) {
	return f.run(companySuccess, companyFailure, func() error {
		req = trimCompany(req)
		if err := f.check(req); err != nil {
			return err
		}
		return f.deliver(ctx, schemas.CompanySubmission, f.Params(req))
	})
}

// Params builds the relay template variables for req.
func (f *CompanyForm) Params(req types.CompanySubmissionRequest) relay.Params {
	return relay.Params{
		"to_email":          f.toEmail,
		"company_name":      req.CompanyName,
		"company_website":   req.CompanyWebsite,
		"company_twitter":   orNotProvided(req.CompanyTwitter),
		"submitter_name":    req.YourName,
		"submitter_email":   req.YourEmail,
		"submitter_message": req.Message,
		"submission_date":   f.timestamp(),
		"subject":           "New Company Submission: " + req.CompanyName,
	}
}

func trimCompany(req types.CompanySubmissionRequest) types.CompanySubmissionRequest {
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.CompanyWebsite = strings.TrimSpace(req.CompanyWebsite)
	req.CompanyTwitter = strings.TrimSpace(req.CompanyTwitter)
	req.YourName = strings.TrimSpace(req.YourName)
	req.YourEmail = strings.TrimSpace(req.YourEmail)
	req.Message = strings.TrimSpace(req.Message)
	return req
}
