package types

import (
	"time"

	"github.com/google/uuid"
)

// CompanySubmissionRequest is the body accepted by the company submission form and endpoint.
// Field order matters: required fields are checked in declaration order.
type CompanySubmissionRequest struct {
	CompanyName     string `json:"companyName" validate:"required"`
	CompanyWebsite  string `json:"companyWebsite" validate:"required,url"`
	YourName        string `json:"yourName" validate:"required"`
	YourEmail       string `json:"yourEmail" validate:"required,email"`
	Message         string `json:"message" validate:"required"`
	CompanyTwitter  string `json:"companyTwitter,omitempty"`
	CompanyPresence string `json:"companyPresence,omitempty"`
}

// WaitlistRequest is a people-directory waitlist signup.
type WaitlistRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// SubmissionKind identifies which form produced a recorded submission.
type SubmissionKind string

const (
	SubmissionKindCompany  SubmissionKind = "company"
	SubmissionKindWaitlist SubmissionKind = "waitlist"
)

// Submission is a recorded form submission.
type Submission struct {
	ID        uuid.UUID      `json:"id"`
	Kind      SubmissionKind `json:"kind"`
	Subject   string         `json:"subject"`
	Payload   any            `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}
