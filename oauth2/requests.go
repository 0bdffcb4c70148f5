package oauth2

import "net/url"

// OAuth 2.0 request parameter names.
const (
	ParamResponseType        = "response_type"
	ParamClientID            = "client_id"
	ParamClientSecret        = "client_secret"
	ParamRedirectURI         = "redirect_uri"
	ParamScope               = "scope"
	ParamState               = "state"
	ParamNonce               = "nonce"
	ParamCodeChallenge       = "code_challenge"
	ParamCodeChallengeMethod = "code_challenge_method"
	ParamGrantType           = "grant_type"
	ParamCode                = "code"
	ParamRefreshToken        = "refresh_token"
	ParamCodeVerifier        = "code_verifier"
	ParamError               = "error"
	ParamErrorDescription    = "error_description"
)

// AuthorizationRequest holds the parameters of an OAuth2 authorization request.
// These are typically sent as query parameters to the authorization endpoint.
type AuthorizationRequest struct {
	// ResponseType specifies what the authorization endpoint should return.
	// Required: Yes. Only "code" is accepted.
	ResponseType ResponseType `json:"response_type"`

	// ClientID identifies the application requesting authorization.
	// Required: Yes
	// Example: "web-app-client"
	ClientID string `json:"client_id"`

	// RedirectURI is where the authorization response will be sent.
	// Required: No, validated when present
	// Example: "https://myapp.com/callback"
	RedirectURI string `json:"redirect_uri,omitempty"`

	// Scope specifies the permissions being requested, space delimited.
	// Example: "openid profile email"
	Scope string `json:"scope,omitempty"`

	// State is an opaque value echoed back on the callback.
	// Required: Recommended (CSRF protection)
	State string `json:"state,omitempty"`

	// CodeChallenge is the PKCE challenge derived from code_verifier.
	// Example: BASE64URL(SHA256(code_verifier))
	CodeChallenge string `json:"code_challenge,omitempty"`

	// CodeChallengeMethod specifies how code_challenge was derived ("S256" or "plain").
	CodeChallengeMethod CodeMethodType `json:"code_challenge_method,omitempty"`

	// Nonce associates a client session with an ID token (OpenID Connect).
	Nonce string `json:"nonce,omitempty"`
}

// AuthorizationRequestFromValues reads an authorization request from query or form values.
func AuthorizationRequestFromValues(v url.Values) *AuthorizationRequest {
	return &AuthorizationRequest{
		ResponseType:        ResponseType(v.Get(ParamResponseType)),
		ClientID:            v.Get(ParamClientID),
		RedirectURI:         v.Get(ParamRedirectURI),
		Scope:               v.Get(ParamScope),
		State:               v.Get(ParamState),
		CodeChallenge:       v.Get(ParamCodeChallenge),
		CodeChallengeMethod: CodeMethodType(v.Get(ParamCodeChallengeMethod)),
		Nonce:               v.Get(ParamNonce),
	}
}

// Values encodes the request as query parameters. Empty fields are omitted.
func (r *AuthorizationRequest) Values() url.Values {
	v := url.Values{}
	setIfNotEmpty(v, ParamResponseType, string(r.ResponseType))
	setIfNotEmpty(v, ParamClientID, r.ClientID)
	setIfNotEmpty(v, ParamRedirectURI, r.RedirectURI)
	setIfNotEmpty(v, ParamScope, r.Scope)
	setIfNotEmpty(v, ParamState, r.State)
	setIfNotEmpty(v, ParamCodeChallenge, r.CodeChallenge)
	setIfNotEmpty(v, ParamCodeChallengeMethod, string(r.CodeChallengeMethod))
	setIfNotEmpty(v, ParamNonce, r.Nonce)
	return v
}

// TokenRequest holds parameters for the OAuth2 token request.
// This represents the form body sent to the token endpoint.
// Which fields are required depends on GrantType.
type TokenRequest struct {
	// GrantType selects the credential exchange method.
	// Required: Yes
	GrantType GrantType `json:"grant_type"`

	// Code is the authorization code received from the authorization endpoint.
	// Required: Yes (only for authorization_code grant)
	Code string `json:"code,omitempty"`

	// RedirectURI must repeat the redirect_uri of the authorization request when one was sent.
	RedirectURI string `json:"redirect_uri,omitempty"`

	// ClientID identifies the OAuth2 client making the request.
	ClientID string `json:"client_id,omitempty"`

	// ClientSecret is the secret credential for confidential clients.
	// Security: Never log or expose this value
	ClientSecret string `json:"client_secret,omitempty"`

	// RefreshToken is used to obtain new access tokens without re-authentication.
	// Required: Yes (only for refresh_token grant)
	RefreshToken string `json:"refresh_token,omitempty"`

	// CodeVerifier is the PKCE code verifier that matches the code_challenge.
	// Required: Yes (if PKCE was used in authorization request)
	CodeVerifier string `json:"code_verifier,omitempty"`
}

// TokenRequestFromValues reads a token request from a form body.
func TokenRequestFromValues(v url.Values) *TokenRequest {
	return &TokenRequest{
		GrantType:    GrantType(v.Get(ParamGrantType)),
		Code:         v.Get(ParamCode),
		RedirectURI:  v.Get(ParamRedirectURI),
		ClientID:     v.Get(ParamClientID),
		ClientSecret: v.Get(ParamClientSecret),
		RefreshToken: v.Get(ParamRefreshToken),
		CodeVerifier: v.Get(ParamCodeVerifier),
	}
}

// Values encodes the request as a form body. client_secret is never included,
// client authentication is added by the transport.
func (r *TokenRequest) Values() url.Values {
	v := url.Values{}
	setIfNotEmpty(v, ParamGrantType, string(r.GrantType))
	setIfNotEmpty(v, ParamCode, r.Code)
	setIfNotEmpty(v, ParamRedirectURI, r.RedirectURI)
	setIfNotEmpty(v, ParamClientID, r.ClientID)
	setIfNotEmpty(v, ParamRefreshToken, r.RefreshToken)
	setIfNotEmpty(v, ParamCodeVerifier, r.CodeVerifier)
	return v
}

func setIfNotEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
