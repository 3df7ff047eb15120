package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jonathan/london-crypto-directory/internal/forms"
	"github.com/jonathan/london-crypto-directory/internal/relay"
	"github.com/jonathan/london-crypto-directory/internal/server/middleware"
	"github.com/jonathan/london-crypto-directory/internal/types"
)

const invalidBodyMessage = "Invalid request body"

// handleCompanyForm relays a "Submit a Company" form through the email relay.
func (s *Server) handleCompanyForm(w http.ResponseWriter, r *http.Request) {
	var req types.CompanySubmissionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.formResponse(w, types.SubmissionKindCompany, forms.Outcome{Status: forms.StatusError, Message: invalidBodyMessage}, &ErrBadRequestBody{Err: err})
		return
	}

	key := clientKey(r)
	form := s.companyForm.acquire(key)
	defer s.companyForm.release(key)

	out, err := form.Submit(r.Context(), req)
	s.formResponse(w, types.SubmissionKindCompany, out, err)
}

// handleWaitlistForm relays a people-directory waitlist signup.
func (s *Server) handleWaitlistForm(w http.ResponseWriter, r *http.Request) {
	var req types.WaitlistRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.formResponse(w, types.SubmissionKindWaitlist, forms.Outcome{Status: forms.StatusError, Message: invalidBodyMessage}, &ErrBadRequestBody{Err: err})
		return
	}

	key := clientKey(r)
	form := s.waitlist.acquire(key)
	defer s.waitlist.release(key)

	out, err := form.Submit(r.Context(), req)
	s.formResponse(w, types.SubmissionKindWaitlist, out, err)
}

// formResponse records metrics for a form submit and writes its outcome.
func (s *Server) formResponse(w http.ResponseWriter, kind types.SubmissionKind, out forms.Outcome, err error) {
	var (
		relayErr   *relay.Error
		missingErr *relay.MissingConfigError
	)
	switch {
	case err == nil:
	case errors.Is(err, forms.ErrSubmitInProgress):
		s.metrics.DuplicateSubmit()
	case errors.As(err, &relayErr):
		s.metrics.RelayFailure(string(relayErr.Kind))
	case errors.As(err, &missingErr):
		log.Printf("[forms] %v", missingErr)
		s.metrics.RelayFailure("missing_config")
	}

	s.metrics.Submission(string(kind), string(out.Status))
	s.jsonResponse(w, HTTPStatus(err), out)
}

func clientKey(r *http.Request) string {
	if id, err := middleware.GetClientID(r); err == nil {
		return id
	}
	return middleware.ClientIDFromAddr(r.RemoteAddr)
}
