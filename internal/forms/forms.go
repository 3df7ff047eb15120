// Package forms adapts the company submission and waitlist forms onto the email relay.
// Each form instance refuses a second submit while one is in flight.
package forms

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/london-crypto-directory/internal/relay"
	"github.com/jonathan/london-crypto-directory/internal/schemas"
)

// Status is the single user-visible state of a form after a submit.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// NotProvided fills optional template variables left blank.
const NotProvided = "Not provided"

// ErrSubmitInProgress is returned when the same form is submitted while a previous
// submit has not finished.
var ErrSubmitInProgress = errors.New("submission already in progress")

// Outcome is what the user sees.
type Outcome struct {
	Status  Status            `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// ValidationError carries inline per-field messages keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// form holds what both forms share: the relay, the recipient, the in-flight flag.
type form struct {
	name       string
	sender     relay.Sender
	toEmail    string
	validate   *validator.Validate
	submitting atomic.Bool
	now        func() time.Time
}

func (f *form) setup(name string, sender relay.Sender, toEmail string) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if tag == "-" || tag == "" {
			return fld.Name
		}
		return tag
	})

	f.name = name
	f.sender = sender
	f.toEmail = toEmail
	f.validate = v
	f.now = time.Now
}

// IsSubmitting reports whether a submit is in flight.
func (f *form) IsSubmitting() bool {
	return f.submitting.Load()
}

func (f *form) check(req any) error {
	err := f.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate %s form: %w", f.name, err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email format"
	case "url":
		return "Invalid website URL format"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// deliver validates params against the template schema and sends them.
// The caller owns the submitting flag.
func (f *form) deliver(ctx context.Context, schema string, params relay.Params) error {
	if err := schemas.Validate(schema, params); err != nil {
		return fmt.Errorf("invalid %s template parameters: %w", f.name, err)
	}

	log.Printf("[forms] Sending %s with params: %v", f.name, relay.Redacted(params))
	resp, err := f.sender.Send(ctx, params)
	if err != nil {
		var relayErr *relay.Error
		if errors.As(err, &relayErr) {
			log.Printf("[forms] %s relay failure: kind=%s status=%d text=%q", f.name, relayErr.Kind, relayErr.Status, relayErr.Text)
		} else {
			log.Printf("[forms] %s submit failed: %v", f.name, err)
		}
		return err
	}

	log.Printf("[forms] %s send result: status=%d text=%q", f.name, resp.Status, resp.Text)
	return nil
}

// run wraps one submit with the in-flight guard and maps the result to an Outcome.
func (f *form) run(success, failure string, fn func() error) (Outcome, error) {
	if !f.submitting.CompareAndSwap(false, true) {
		return Outcome{Status: StatusError, Message: failure}, ErrSubmitInProgress
	}
	defer f.submitting.Store(false)

	if err := fn(); err != nil {
		out := Outcome{Status: StatusError, Message: failure}
		var verr *ValidationError
		if errors.As(err, &verr) {
			out.Errors = verr.Fields
		}
		return out, err
	}
	return Outcome{Status: StatusSuccess, Message: success}, nil
}

func (f *form) timestamp() string {
	return f.now().UTC().Format("2006-01-02T15:04:05.000Z")
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotProvided
	}
	return s
}
