package compliance

import "github.com/jrsteele09/go-oauth-compliance/oauth2"

const (
	msgGrantTypeRequired    = "grant_type parameter is required"
	msgGrantTypeUnsupported = "grant type not supported"
	msgCodeRequired         = "code parameter is required for authorization_code grant"
	msgRefreshTokenRequired = "refresh_token parameter is required for refresh_token grant"
)

// ValidateTokenRequest checks the fields a token request needs for its grant type.
// PKCE binding is not checked here because the request alone does not carry the
// code_challenge; see ValidateAuthorizationFlow.
func (v *Validator) ValidateTokenRequest(req *oauth2.TokenRequest) *Result {
	r := NewResult()
	if req == nil {
		req = &oauth2.TokenRequest{}
	}

	if req.GrantType == "" {
		r.AddError(oauth2.ErrorInvalidRequest, msgGrantTypeRequired)
		return r
	}

	grant, ok := oauth2.ParseGrantType(string(req.GrantType))
	if !ok {
		r.AddError(oauth2.ErrorUnsupportedGrantType, msgGrantTypeUnsupported)
		return r
	}

	switch grant {
	case oauth2.AuthorizationCodeGrant:
		if req.Code == "" {
			r.AddError(oauth2.ErrorInvalidRequest, msgCodeRequired)
		}
	case oauth2.RefreshTokenGrant:
		if req.RefreshToken == "" {
			r.AddError(oauth2.ErrorInvalidRequest, msgRefreshTokenRequired)
		}
	case oauth2.ClientCredentialsGrant,
		oauth2.PasswordGrant,
		oauth2.DeviceCodeGrant,
		oauth2.JWTBearerGrant,
		oauth2.TokenExchangeGrant:
		// Recognised, no field rules.
	}

	return r
}
