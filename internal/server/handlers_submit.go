package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jonathan/london-crypto-directory/internal/submissions"
	"github.com/jonathan/london-crypto-directory/internal/types"
)

const (
	submitSuccessMessage = "Company submission sent successfully"
	submitFailureMessage = "Failed to process submission. Please try again later."
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 << 10

// handleSubmitCompany validates a company submission and records it. Nothing is emailed.
func (s *Server) handleSubmitCompany(w http.ResponseWriter, r *http.Request) {
	var req types.CompanySubmissionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		log.Printf("[submit] Error processing company submission: %v", err)
		s.metrics.Submission(string(types.SubmissionKindCompany), "error")
		s.jsonResponse(w, http.StatusInternalServerError, map[string]any{
			"error":   submitFailureMessage,
			"success": false,
		})
		return
	}

	if err := submissions.Validate(&req); err != nil {
		message := err.Error()
		var verr *submissions.ValidationError
		if errors.As(err, &verr) {
			message = verr.Message
		}
		s.metrics.Submission(string(types.SubmissionKindCompany), "invalid")
		s.errorResponse(w, HTTPStatus(err), message)
		return
	}

	if _, err := s.recorder.Record(r.Context(), &req); err != nil {
		log.Printf("[submit] Error processing company submission: %v", err)
		s.metrics.Submission(string(types.SubmissionKindCompany), "error")
		s.jsonResponse(w, http.StatusInternalServerError, map[string]any{
			"error":   submitFailureMessage,
			"success": false,
		})
		return
	}

	s.metrics.Submission(string(types.SubmissionKindCompany), "recorded")
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message": submitSuccessMessage,
		"success": true,
	})
}

// handleSubmitCompanyMethodNotAllowed answers GET on the submission endpoint.
func (s *Server) handleSubmitCompanyMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	s.errorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
}
