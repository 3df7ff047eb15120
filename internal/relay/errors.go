package relay

import (
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a relay rejection for diagnostics.
type Kind string

const (
	KindBadRequest    Kind = "bad_request"
	KindUnauthorized  Kind = "unauthorized"
	KindNotFound      Kind = "not_found"
	KindUnprocessable Kind = "unprocessable"
	KindUnknown       Kind = "unknown"
)

// ClassifyStatus maps a relay HTTP status to a Kind.
func ClassifyStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest:
		return KindBadRequest
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusUnprocessableEntity:
		return KindUnprocessable
	default:
		return KindUnknown
	}
}

// MissingConfigError is returned before any network call when required
// relay identifiers are not configured.
type MissingConfigError struct {
	Missing []string
}

func (e *MissingConfigError) Error() string {
	return "EmailJS configuration missing: " + strings.Join(e.Missing, ", ")
}

// Error is a failed relay call. Status is 0 when no response was received.
type Error struct {
	Status int
	Text   string
	Kind   Kind
	Cause  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindBadRequest:
		return fmt.Sprintf("EmailJS Bad Request (400): %s", e.detail("Invalid parameters or template"))
	case KindUnauthorized:
		return fmt.Sprintf("EmailJS Unauthorized (401): %s", e.detail("Invalid public key or service ID"))
	case KindNotFound:
		return fmt.Sprintf("EmailJS Not Found (404): %s", e.detail("Service or template not found"))
	case KindUnprocessable:
		return fmt.Sprintf("EmailJS Unprocessable Entity (422): %s", e.detail("Template variables issue"))
	}

	status := "Unknown"
	if e.Status != 0 {
		status = fmt.Sprintf("%d", e.Status)
	}
	return fmt.Sprintf("EmailJS Error (%s): %s", status, e.detail("Unknown error"))
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) detail(fallback string) string {
	if e.Text != "" {
		return e.Text
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return fallback
}
