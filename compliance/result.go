package compliance

import (
	"strings"

	"github.com/jrsteele09/go-oauth-compliance/oauth2"
)

// Result accumulates the outcome of a validation. Every rule that applies appends to the
// same Result, so a single call reports all violations at once.
// Errors make the result invalid; warnings are advisory only.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`

	// codes[i] is the OAuth2 error code of Errors[i].
	codes []oauth2.ErrorCode
}

// NewResult returns an empty, valid result.
func NewResult() *Result {
	return &Result{
		Valid:    true,
		Errors:   []string{},
		Warnings: []string{},
		codes:    []oauth2.ErrorCode{},
	}
}

// AddError appends a violation and marks the result invalid.
func (r *Result) AddError(code oauth2.ErrorCode, message string) {
	r.Errors = append(r.Errors, message)
	r.codes = append(r.codes, code)
	r.Valid = false
}

// AddWarning appends an advisory message. It never changes Valid.
func (r *Result) AddWarning(message string) {
	r.Warnings = append(r.Warnings, message)
}

// Merge appends other's errors and warnings, in order, to r.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	for i, msg := range other.Errors {
		r.AddError(other.codeAt(i), msg)
	}
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// HasErrors reports whether any error was recorded.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings reports whether any warning was recorded.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Codes returns the error code of each recorded error, aligned with Errors.
func (r *Result) Codes() []oauth2.ErrorCode {
	codes := make([]oauth2.ErrorCode, len(r.Errors))
	for i := range r.Errors {
		codes[i] = r.codeAt(i)
	}
	return codes
}

// FirstErrorCode returns the code of the first recorded error.
func (r *Result) FirstErrorCode() (oauth2.ErrorCode, bool) {
	if !r.HasErrors() {
		return "", false
	}
	return r.codeAt(0), true
}

// ErrorResponse turns an invalid result into an OAuth2 error response carrying the code of
// the first error and every error message. It returns nil for a valid result.
func (r *Result) ErrorResponse(state string) *oauth2.ErrorResponse {
	code, ok := r.FirstErrorCode()
	if !ok {
		return nil
	}
	return oauth2.NewErrorResponse(code, strings.Join(r.Errors, "; "), state)
}

// A Result built with a struct literal has no codes, so default to invalid_request.
func (r *Result) codeAt(i int) oauth2.ErrorCode {
	if i < len(r.codes) {
		return r.codes[i]
	}
	return oauth2.ErrorInvalidRequest
}
