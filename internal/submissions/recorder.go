package submissions

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/london-crypto-directory/internal/types"
)

// Saver persists recorded submissions.
type Saver interface {
	SaveSubmission(ctx context.Context, sub *types.Submission) error
}

// Record is the structured copy of an accepted submission.
type Record struct {
	Timestamp string        `json:"timestamp"`
	Company   RecordCompany `json:"company"`
	Submitter RecordPerson  `json:"submitter"`
}

// RecordCompany is the company half of a Record.
type RecordCompany struct {
	Name     string `json:"name"`
	Website  string `json:"website"`
	Twitter  string `json:"twitter"`
	Presence string `json:"presence"`
}

// RecordPerson is the submitter half of a Record.
type RecordPerson struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Recorder logs and stores accepted submissions.
type Recorder struct {
	saver Saver
	to    string
	delay time.Duration
	now   func() time.Time
	newID func() uuid.UUID
}

// NewRecorder creates a recorder. to is only used in the log line; delay simulates
// the latency of a real delivery.
func NewRecorder(saver Saver, to string, delay time.Duration) *Recorder {
	return &Recorder{
		saver: saver,
		to:    to,
		delay: delay,
		now:   time.Now,
		newID: uuid.New,
	}
}

// Subject is the notification subject line for a company submission.
func Subject(req *types.CompanySubmissionRequest) string {
	return "New Company Submission: " + req.CompanyName
}

// Record logs req and stores it. req must already be valid.
func (r *Recorder) Record(ctx context.Context, req *types.CompanySubmissionRequest) (*types.Submission, error) {
	now := r.now().UTC()
	stamp := now.Format("2006-01-02T15:04:05.000Z")
	subject := Subject(req)

	record := Record{
		Timestamp: stamp,
		Company: RecordCompany{
			Name:     req.CompanyName,
			Website:  req.CompanyWebsite,
			Twitter:  orNotProvided(req.CompanyTwitter),
			Presence: orNotProvided(req.CompanyPresence),
		},
		Submitter: RecordPerson{
			Name:    req.YourName,
			Email:   req.YourEmail,
			Message: req.Message,
		},
	}

	log.Println("[submit] === NEW COMPANY SUBMISSION ===")
	log.Printf("[submit] Subject: %s", subject)
	log.Printf("[submit] To: %s", r.to)
	log.Printf("[submit] Content:\n%s", Body(req, stamp))
	log.Printf("[submit] Data: %+v", record)

	sub := &types.Submission{
		ID:        r.newID(),
		Kind:      types.SubmissionKindCompany,
		Subject:   subject,
		Payload:   record,
		CreatedAt: now,
	}
	if r.saver != nil {
		if err := r.saver.SaveSubmission(ctx, sub); err != nil {
			return nil, fmt.Errorf("failed to record submission: %w", err)
		}
	}

	if r.delay > 0 {
		select {
		case <-time.After(r.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	log.Printf("[submit] Company submission received: company=%q submitter=%q id=%s", req.CompanyName, req.YourName, sub.ID)
	return sub, nil
}

// Body renders the plain-text notification body.
func Body(req *types.CompanySubmissionRequest, stamp string) string {
	var sb strings.Builder
	sb.WriteString("New company submission received from The London Crypto Directory:\n\n")
	sb.WriteString("COMPANY INFORMATION:\n")
	sb.WriteString(fmt.Sprintf("- Company Name: %s\n", req.CompanyName))
	sb.WriteString(fmt.Sprintf("- Company Website: %s\n", req.CompanyWebsite))
	sb.WriteString(fmt.Sprintf("- Company Twitter: %s\n", orNotProvided(req.CompanyTwitter)))
	sb.WriteString(fmt.Sprintf("- Company Presence: %s\n\n", orNotProvided(req.CompanyPresence)))
	sb.WriteString("SUBMITTED BY:\n")
	sb.WriteString(fmt.Sprintf("- Name: %s\n", req.YourName))
	sb.WriteString(fmt.Sprintf("- Email: %s\n\n", req.YourEmail))
	sb.WriteString("MESSAGE:\n")
	sb.WriteString(req.Message)
	sb.WriteString("\n\n---\n")
	sb.WriteString(fmt.Sprintf("Submitted at: %s\n", stamp))
	sb.WriteString("From: The London Crypto Directory Company Submission Form")
	return sb.String()
}

func orNotProvided(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}
