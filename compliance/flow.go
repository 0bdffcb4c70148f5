package compliance

import "github.com/jrsteele09/go-oauth-compliance/oauth2"

const (
	msgStateMismatch       = "state parameter mismatch"
	msgRedirectURIMismatch = "redirect_uri mismatch between authorization and token requests"
	msgVerifierRequired    = "code_verifier required when code_challenge was used"
	msgVerifierMismatch    = "code_verifier does not match code_challenge"
	msgVerifierNotExpected = "code_verifier provided but no code_challenge was used"
)

// ValidateAuthorizationFlow validates both legs of an authorization code flow and checks
// that they belong together. expectedState is the state the client stored before the
// redirect; nil skips the state comparison.
func (v *Validator) ValidateAuthorizationFlow(authReq *oauth2.AuthorizationRequest, tokenReq *oauth2.TokenRequest, expectedState *string) *Result {
	if authReq == nil {
		authReq = &oauth2.AuthorizationRequest{}
	}
	if tokenReq == nil {
		tokenReq = &oauth2.TokenRequest{}
	}

	r := NewResult()
	r.Merge(v.ValidateAuthorizationRequest(authReq))
	r.Merge(v.ValidateTokenRequest(tokenReq))

	if expectedState != nil && (authReq.State != "" || *expectedState != "") {
		if !ValidateState(authReq.State, *expectedState) {
			r.AddError(oauth2.ErrorInvalidRequest, msgStateMismatch)
		}
	}

	if authReq.RedirectURI != "" && tokenReq.RedirectURI != "" && authReq.RedirectURI != tokenReq.RedirectURI {
		r.AddError(oauth2.ErrorInvalidRequest, msgRedirectURIMismatch)
	}

	switch {
	case authReq.CodeChallenge != "" && tokenReq.CodeVerifier == "":
		r.AddError(oauth2.ErrorInvalidRequest, msgVerifierRequired)
	case authReq.CodeChallenge != "":
		verifierResult := v.ValidateCodeVerifier(tokenReq.CodeVerifier)
		r.Merge(verifierResult)
		method, known := oauth2.ParseCodeMethodType(string(authReq.CodeChallengeMethod))
		if known && verifierResult.Valid && !VerifyCodeChallenge(tokenReq.CodeVerifier, authReq.CodeChallenge, method) {
			r.AddError(oauth2.ErrorInvalidRequest, msgVerifierMismatch)
		}
	case tokenReq.CodeVerifier != "":
		r.AddWarning(msgVerifierNotExpected)
	}

	return r
}
