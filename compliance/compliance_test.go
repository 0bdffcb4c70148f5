package compliance_test

import "github.com/jrsteele09/go-oauth-compliance/oauth2"

const (
	testClientID      = "web-app-client"
	testRedirectURI   = "https://app.example.com/callback"
	testScope         = "openid profile email"
	testState         = "n8Kq2ZpX4vL7rT1yW9bF3hJ6mD0s"
	testCodeChallenge = "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM"
	testCodeVerifier  = "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
	testAuthCode      = "SplxlOBeZQQYbYS6WxSbIA"
	testRefreshToken  = "tGzv3JOkF0XG5Qx2TlKWIA"
)

// validAuthorizationRequest returns a request that passes with no errors and no warnings.
func validAuthorizationRequest() *oauth2.AuthorizationRequest {
	return &oauth2.AuthorizationRequest{
		ResponseType:        oauth2.CodeResponseType,
		ClientID:            testClientID,
		RedirectURI:         testRedirectURI,
		Scope:               testScope,
		State:               testState,
		CodeChallenge:       testCodeChallenge,
		CodeChallengeMethod: oauth2.CodeMethodTypeS256,
	}
}

func validTokenRequest() *oauth2.TokenRequest {
	return &oauth2.TokenRequest{
		GrantType:    oauth2.AuthorizationCodeGrant,
		Code:         testAuthCode,
		RedirectURI:  testRedirectURI,
		ClientID:     testClientID,
		CodeVerifier: testCodeVerifier,
	}
}
