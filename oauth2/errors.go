package oauth2

import "net/url"

// ErrorCode is the error vocabulary of RFC 6749 §4.1.2.1 and §5.2 used by this module.
type ErrorCode string

const (
	ErrorInvalidRequest          ErrorCode = "invalid_request"
	ErrorInvalidScope            ErrorCode = "invalid_scope"
	ErrorUnsupportedResponseType ErrorCode = "unsupported_response_type"
	ErrorUnsupportedGrantType    ErrorCode = "unsupported_grant_type"
	ErrorServerError             ErrorCode = "server_error"
)

// ErrorResponse is the OAuth2 error body / redirect parameters.
type ErrorResponse struct {
	Error            ErrorCode `json:"error"`
	ErrorDescription string    `json:"error_description,omitempty"`
	State            string    `json:"state,omitempty"`
}

// NewErrorResponse builds an ErrorResponse. The code is not checked against the vocabulary,
// callers pass one of the ErrorCode constants.
func NewErrorResponse(code ErrorCode, description, state string) *ErrorResponse {
	return &ErrorResponse{
		Error:            code,
		ErrorDescription: description,
		State:            state,
	}
}

// Values encodes the error for an authorization redirect query string.
func (e *ErrorResponse) Values() url.Values {
	v := url.Values{}
	v.Set(ParamError, string(e.Error))
	setIfNotEmpty(v, ParamErrorDescription, e.ErrorDescription)
	setIfNotEmpty(v, ParamState, e.State)
	return v
}

// String returns the error code followed by the description when there is one.
func (e *ErrorResponse) String() string {
	if e.ErrorDescription == "" {
		return string(e.Error)
	}
	return string(e.Error) + ": " + e.ErrorDescription
}
