package oauth2

// TokenResponse represents the response from an OAuth2 token request.
// This is the standard OAuth2 token endpoint response format as defined in RFC 6749 §5.1.
type TokenResponse struct {
	// AccessToken is the token used to access protected resources.
	// Usage: Include in Authorization header: "Bearer <access_token>"
	AccessToken string `json:"access_token"`

	// TokenType indicates how to use the access token (usually "Bearer").
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the lifetime in seconds of the access token.
	// Note: This is a hint, the provider may expire the token earlier
	ExpiresIn int64 `json:"expires_in,omitempty"`

	// RefreshToken is used to obtain new access tokens.
	// Security: Should be stored securely, may rotate on each use
	RefreshToken string `json:"refresh_token,omitempty"`

	// IDToken is the OpenID Connect ID token.
	// Only present: When "openid" scope was requested
	IDToken string `json:"id_token,omitempty"`

	// Scope indicates the access token's granted permissions.
	// Note: May be less than requested if some scopes were denied
	Scope string `json:"scope,omitempty"`
}
