package exchange

import (
	"strings"

	"github.com/jrsteele09/go-oauth-compliance/compliance"
	apperrors "github.com/jrsteele09/go-oauth-compliance/internal/errors"
	"github.com/jrsteele09/go-oauth-compliance/oauth2"
)

// ValidationError is returned when a request is refused before it reaches the provider.
type ValidationError struct {
	Result *compliance.Result
	State  string
}

func (e *ValidationError) Error() string {
	return apperrors.ErrValidationFailed.Error() + ": " + strings.Join(e.Result.Errors, "; ")
}

func (e *ValidationError) Unwrap() error {
	return apperrors.ErrValidationFailed
}

// ErrorResponse is the OAuth2 error to send back to the caller.
func (e *ValidationError) ErrorResponse() *oauth2.ErrorResponse {
	return e.Result.ErrorResponse(e.State)
}
