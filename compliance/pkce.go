package compliance

import (
	"crypto/subtle"

	"github.com/jrsteele09/go-oauth-compliance/oauth2"
	"github.com/pkg/errors"
	xoauth2 "golang.org/x/oauth2"
)

// RFC 7636 §4.1 bounds, shared by code_verifier and code_challenge.
const (
	minPKCELength = 43
	maxPKCELength = 128
)

const (
	msgChallengeMethod       = `code_challenge_method must be "plain" or "S256"`
	msgChallengePlain        = `code_challenge_method "plain" is less secure - consider using "S256"`
	msgChallengeLength       = "code_challenge length must be 43-128 characters"
	msgChallengeInvalidChars = "code_challenge contains invalid characters"
	msgVerifierLength        = "code_verifier length must be 43-128 characters"
	msgVerifierInvalidChars  = "code_verifier contains invalid characters"
)

// PKCEPair is a matching code_verifier / code_challenge pair.
type PKCEPair struct {
	CodeVerifier        string                `json:"code_verifier"`
	CodeChallenge       string                `json:"code_challenge"`
	CodeChallengeMethod oauth2.CodeMethodType `json:"code_challenge_method"`
}

// ValidatePKCEParameters checks the PKCE parameters of an authorization request.
// PKCE is optional here: a request without code_challenge is valid.
func (v *Validator) ValidatePKCEParameters(req *oauth2.AuthorizationRequest) *Result {
	r := NewResult()
	if req == nil || req.CodeChallenge == "" {
		return r
	}

	method, ok := oauth2.ParseCodeMethodType(string(req.CodeChallengeMethod))
	if !ok {
		r.AddError(oauth2.ErrorInvalidRequest, msgChallengeMethod)
	}
	if method == oauth2.CodeMethodTypePlain {
		r.AddWarning(msgChallengePlain)
	}

	// Only the method is binding here; the challenge shape is advisory.
	if !pkceLengthValid(req.CodeChallenge) {
		r.AddWarning(msgChallengeLength)
	}
	if !isUnreserved(req.CodeChallenge) {
		r.AddWarning(msgChallengeInvalidChars)
	}

	return r
}

// ValidateCodeVerifier checks the length and character set of a code_verifier.
func (v *Validator) ValidateCodeVerifier(verifier string) *Result {
	r := NewResult()
	if !pkceLengthValid(verifier) {
		r.AddError(oauth2.ErrorInvalidRequest, msgVerifierLength)
	}
	if !isUnreserved(verifier) {
		r.AddError(oauth2.ErrorInvalidRequest, msgVerifierInvalidChars)
	}
	return r
}

// GeneratePKCECodes returns a fresh S256 verifier/challenge pair. The pair is checked
// against the validator rules before it is returned.
func GeneratePKCECodes() (*PKCEPair, error) {
	verifier := xoauth2.GenerateVerifier()
	pair := &PKCEPair{
		CodeVerifier:        verifier,
		CodeChallenge:       xoauth2.S256ChallengeFromVerifier(verifier),
		CodeChallengeMethod: oauth2.CodeMethodTypeS256,
	}

	v := NewValidator()
	if res := v.ValidateCodeVerifier(pair.CodeVerifier); !res.Valid {
		return nil, errors.Errorf("[GeneratePKCECodes] generated verifier rejected: %v", res.Errors)
	}
	req := &oauth2.AuthorizationRequest{
		CodeChallenge:       pair.CodeChallenge,
		CodeChallengeMethod: pair.CodeChallengeMethod,
	}
	if res := v.ValidatePKCEParameters(req); !res.Valid {
		return nil, errors.Errorf("[GeneratePKCECodes] generated challenge rejected: %v", res.Errors)
	}

	return pair, nil
}

// VerifyCodeChallenge reports whether verifier matches challenge under method
// (RFC 7636 §4.6). Unknown methods never match.
func VerifyCodeChallenge(verifier, challenge string, method oauth2.CodeMethodType) bool {
	if verifier == "" || challenge == "" {
		return false
	}
	var computed string
	switch method {
	case oauth2.CodeMethodTypeS256:
		computed = xoauth2.S256ChallengeFromVerifier(verifier)
	case oauth2.CodeMethodTypePlain:
		computed = verifier
	default:
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(challenge)) == 1
}

func pkceLengthValid(s string) bool {
	return len(s) >= minPKCELength && len(s) <= maxPKCELength
}

// isUnreserved reports whether s only holds [A-Za-z0-9-._~] (RFC 3986 unreserved).
func isUnreserved(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '-', c == '.', c == '_', c == '~':
		default:
			return false
		}
	}
	return true
}
