package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/london-crypto-directory/internal/forms"
	"github.com/jonathan/london-crypto-directory/internal/relay"
	"github.com/jonathan/london-crypto-directory/internal/submissions"
)

// ErrBadRequestBody indicates a request body that is not the expected JSON.
type ErrBadRequestBody struct {
	Err error
}

func (e *ErrBadRequestBody) Error() string {
	return "invalid request body: " + e.Err.Error()
}

func (e *ErrBadRequestBody) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		submitErr  *submissions.ValidationError
		formErr    *forms.ValidationError
		bodyErr    *ErrBadRequestBody
		relayErr   *relay.Error
		missingErr *relay.MissingConfigError
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &submitErr), errors.As(err, &formErr), errors.As(err, &bodyErr):
		return http.StatusBadRequest
	case errors.Is(err, forms.ErrSubmitInProgress):
		return http.StatusConflict
	case errors.As(err, &relayErr), errors.As(err, &missingErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
