package forms

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/london-crypto-directory/internal/relay"
	"github.com/jonathan/london-crypto-directory/internal/schemas"
	"github.com/jonathan/london-crypto-directory/internal/types"
)

const (
	waitlistSubject = "New People Directory Waitlist Signup"
	waitlistSuccess = "Thank you! You've been added to the waitlist. We'll be in touch soon!"
	waitlistFailure = "There was an error adding you to the waitlist. Please try again."
)

// WaitlistForm is the people-directory waitlist signup.
type WaitlistForm struct {
	form
}

// NewWaitlistForm creates a waitlist form delivering to toEmail.
func NewWaitlistForm(sender relay.Sender, toEmail string) *WaitlistForm {
	f := &WaitlistForm{}
	f.setup("waitlist", sender, toEmail)
	return f
}

// Submit validates and relays one signup.
func (f *WaitlistForm) Submit(ctx context.Context, req types.WaitlistRequest) (Outcome, error) {
	return f.run(waitlistSuccess, waitlistFailure, func() error {
		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)
		if err := f.check(req); err != nil {
			return err
		}
		return f.deliver(ctx, schemas.Waitlist, f.Params(req))
	})
}

// Params builds the relay template variables for req.
func (f *WaitlistForm) Params(req types.WaitlistRequest) relay.Params {
	message := fmt.Sprintf("New waitlist signup for the People Directory feature.\n\nName: %s\nEmail: %s\n\n"+
		"The user is interested in being notified when the People Directory launches.", req.Name, req.Email)

	return relay.Params{
		"to_email":          f.toEmail,
		"subject":           waitlistSubject,
		"user_name":         req.Name,
		"user_email":        req.Email,
		"submitter_name":    req.Name,
		"submitter_email":   req.Email,
		"submitter_message": message,
		"submission_date":   f.timestamp(),
	}
}
