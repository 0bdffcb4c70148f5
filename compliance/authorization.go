package compliance

import "github.com/jrsteele09/go-oauth-compliance/oauth2"

// minStateLength is the shortest state value that is not flagged as weak.
const minStateLength = 16

const (
	msgResponseTypeUnsupported = `only "code" response type is supported`
	msgClientIDRequired        = "client_id parameter is required"
	msgClientIDInvalidChars    = "client_id contains invalid characters"
	msgStateMissing            = "state parameter not provided - CSRF protection disabled"
	msgStateTooShort           = "state parameter is too short - should be at least 16 characters"
)

// ValidateAuthorizationRequest checks a complete authorization request. Only the
// authorization code front channel (response_type=code) is certified.
func (v *Validator) ValidateAuthorizationRequest(req *oauth2.AuthorizationRequest) *Result {
	r := NewResult()
	if req == nil {
		req = &oauth2.AuthorizationRequest{}
	}

	if _, ok := oauth2.ParseResponseType(string(req.ResponseType)); !ok {
		r.AddError(oauth2.ErrorUnsupportedResponseType, msgResponseTypeUnsupported)
	}

	switch {
	case req.ClientID == "":
		r.AddError(oauth2.ErrorInvalidRequest, msgClientIDRequired)
	case !isClientID(req.ClientID):
		r.AddError(oauth2.ErrorInvalidRequest, msgClientIDInvalidChars)
	}

	if req.RedirectURI != "" {
		r.Merge(v.ValidateRedirectURI(req.RedirectURI))
	}
	if req.Scope != "" {
		r.Merge(v.ValidateScope(req.Scope))
	}
	r.Merge(v.ValidatePKCEParameters(req))

	// CSRF protection is recommended, not mandatory, so state only ever warns.
	switch {
	case req.State == "":
		r.AddWarning(msgStateMissing)
	case len(req.State) < minStateLength:
		r.AddWarning(msgStateTooShort)
	}

	return r
}

// isClientID allows printable ASCII without whitespace (RFC 6749 VSCHAR minus space).
func isClientID(id string) bool {
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
