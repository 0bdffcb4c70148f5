package oauth2

// ResponseType represents the OAuth 2.0 response type.
// Determines what is returned from the authorization endpoint.
type ResponseType string

const (
	// CodeResponseType indicates the authorization code flow.
	// Returns an authorization code that must be exchanged for tokens at the token endpoint.
	// Example: /oauth/authorize?response_type=code&client_id=...
	CodeResponseType ResponseType = "code"
)

// ParseResponseType returns the response type for s and whether it is one we support.
func ParseResponseType(s string) (ResponseType, bool) {
	switch rt := ResponseType(s); rt {
	case CodeResponseType:
		return rt, true
	}
	return ResponseType(s), false
}

// CodeMethodType represents the PKCE (Proof Key for Code Exchange) challenge method.
// Used to prevent authorization code interception attacks (especially for public clients).
type CodeMethodType string

const (
	// CodeMethodTypeS256 indicates SHA-256 hashing is used for the code challenge.
	// Client sends: code_challenge = BASE64URL(SHA256(code_verifier))
	// Server validates: SHA256(provided code_verifier) == stored code_challenge
	CodeMethodTypeS256 CodeMethodType = "S256"

	// CodeMethodTypePlain means no hashing, code_verifier sent directly.
	// Client sends: code_challenge = code_verifier (plaintext)
	// Security: Weaker than S256, only protects against passive attacks
	CodeMethodTypePlain CodeMethodType = "plain"
)

// ParseCodeMethodType matches s exactly (case sensitive) against the RFC 7636 methods.
func ParseCodeMethodType(s string) (CodeMethodType, bool) {
	switch m := CodeMethodType(s); m {
	case CodeMethodTypeS256, CodeMethodTypePlain:
		return m, true
	}
	return CodeMethodType(s), false
}

// GrantType represents the OAuth 2.0 grant type used at the token endpoint.
// Determines what credentials are required to obtain tokens.
type GrantType string

const (
	// AuthorizationCodeGrant exchanges an authorization code for tokens.
	// Token request includes: code, client_id, redirect_uri, code_verifier (if PKCE)
	AuthorizationCodeGrant GrantType = "authorization_code"

	// RefreshTokenGrant exchanges a refresh token for new tokens.
	// Token request includes: refresh_token, client_id
	RefreshTokenGrant GrantType = "refresh_token"

	// ClientCredentialsGrant allows machine-to-machine authentication.
	ClientCredentialsGrant GrantType = "client_credentials"

	// PasswordGrant is the resource owner password credentials grant (RFC 6749 §4.3).
	PasswordGrant GrantType = "password"

	// DeviceCodeGrant is the device authorization grant (RFC 8628).
	DeviceCodeGrant GrantType = "urn:ietf:params:oauth:grant-type:device_code"

	// JWTBearerGrant uses a JWT as an authorization grant (RFC 7523).
	JWTBearerGrant GrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"

	// TokenExchangeGrant is OAuth 2.0 token exchange (RFC 8693).
	TokenExchangeGrant GrantType = "urn:ietf:params:oauth:grant-type:token-exchange"
)

// ParseGrantType returns the grant type for s and whether it is recognised.
func ParseGrantType(s string) (GrantType, bool) {
	switch gt := GrantType(s); gt {
	case AuthorizationCodeGrant,
		RefreshTokenGrant,
		ClientCredentialsGrant,
		PasswordGrant,
		DeviceCodeGrant,
		JWTBearerGrant,
		TokenExchangeGrant:
		return gt, true
	}
	return GrantType(s), false
}
