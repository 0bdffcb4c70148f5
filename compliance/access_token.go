package compliance

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-oauth-compliance/oauth2"
)

// minAccessTokenLength is the shortest value accepted as an access token.
const minAccessTokenLength = 16

const bearerPrefix = "Bearer "

const (
	msgAccessTokenRequired = "Access token is required"
	msgAccessTokenTooShort = "Access token is too short"
	msgAccessTokenBearer   = `Access token should not include "Bearer " prefix`
	msgAccessTokenBadJWT   = "Access token looks like a JWT but could not be decoded"
)

// ValidateAccessToken checks the shape of a bare access token value. The scheme prefix
// belongs to the transport, not the value. Signatures are never verified here.
func (v *Validator) ValidateAccessToken(token string) *Result {
	r := NewResult()

	if token == "" {
		r.AddError(oauth2.ErrorInvalidRequest, msgAccessTokenRequired)
		return r
	}
	if len(token) < minAccessTokenLength {
		r.AddError(oauth2.ErrorInvalidRequest, msgAccessTokenTooShort)
	}

	bare := token
	if strings.HasPrefix(token, bearerPrefix) {
		r.AddWarning(msgAccessTokenBearer)
		bare = strings.TrimPrefix(token, bearerPrefix)
	}

	if looksLikeJWT(bare) {
		if _, _, err := jwt.NewParser().ParseUnverified(bare, jwt.MapClaims{}); err != nil {
			r.AddWarning(msgAccessTokenBadJWT)
		}
	}

	return r
}

// looksLikeJWT reports whether s has the three dot separated segments of a JWS compact
// serialization.
func looksLikeJWT(s string) bool {
	return strings.Count(s, ".") == 2
}
