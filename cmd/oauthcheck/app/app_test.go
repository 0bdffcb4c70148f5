package app_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jrsteele09/go-oauth-compliance/cmd/oauthcheck/app"
	"github.com/jrsteele09/go-oauth-compliance/compliance"
	"github.com/jrsteele09/go-oauth-compliance/oauth2"
	"github.com/stretchr/testify/require"
)

const (
	testVerifier  = "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
	testChallenge = "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM"
	testState     = "n8Kq2ZpX4vL7rT1yW9bF3hJ6mD0s"
	authorizeURL  = "https://idp.example.com/authorize?response_type=code&client_id=web-app-client" +
		"&redirect_uri=https%3A%2F%2Fapp.example.com%2Fcallback&scope=openid+profile&state=" + testState +
		"&code_challenge=" + testChallenge + "&code_challenge_method=S256"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := app.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestAuthorize(t *testing.T) {
	t.Run("valid url", func(t *testing.T) {
		out, err := run(t, "authorize", authorizeURL)
		require.NoError(t, err)
		require.Contains(t, out, "PASS")
	})

	t.Run("bare query string", func(t *testing.T) {
		out, err := run(t, "authorize", "response_type=code&client_id=web-app-client&state="+testState)
		require.NoError(t, err)
		require.Contains(t, out, "PASS")
	})

	t.Run("invalid request", func(t *testing.T) {
		out, err := run(t, "authorize", "https://idp.example.com/authorize?response_type=token")
		require.ErrorIs(t, err, app.ErrResultInvalid)
		require.Contains(t, out, "FAIL")
		require.Contains(t, out, `only "code" response type is supported (unsupported_response_type)`)
		require.Contains(t, out, "client_id parameter is required (invalid_request)")
		require.Contains(t, out, "warning state parameter not provided")
	})

	t.Run("json output", func(t *testing.T) {
		out, err := run(t, "--json", "authorize", "https://idp.example.com/authorize?client_id=web-app-client")
		require.ErrorIs(t, err, app.ErrResultInvalid)

		var result compliance.Result
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		require.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
	})

	t.Run("missing argument", func(t *testing.T) {
		_, err := run(t, "authorize")
		require.Error(t, err)
		require.NotErrorIs(t, err, app.ErrResultInvalid)
	})
}

func TestRedirectURIFlags(t *testing.T) {
	_, err := run(t, "redirect-uri", "http://app.example.com/cb")
	require.ErrorIs(t, err, app.ErrResultInvalid)

	out, err := run(t, "--allow-http", "redirect-uri", "http://app.example.com/cb")
	require.NoError(t, err)
	require.Contains(t, out, "PASS")

	out, err = run(t, "--schemes", "https", "redirect-uri", "http://localhost:8080/cb")
	require.ErrorIs(t, err, app.ErrResultInvalid)
	require.Contains(t, out, `redirect_uri scheme "http" is not allowed`)

	_, err = run(t, "--schemes", "https,com.example.app", "redirect-uri", "com.example.app:/oauth/cb")
	require.NoError(t, err)
}

func TestScope(t *testing.T) {
	out, err := run(t, "scope", "openid profile openid")
	require.NoError(t, err)
	require.Contains(t, out, "warning")

	out, err = run(t, "--max-scope-length", "6", "scope", "openid profile")
	require.ErrorIs(t, err, app.ErrResultInvalid)
	require.Contains(t, out, "scope exceeds maximum length of 6")
}

func TestToken(t *testing.T) {
	_, err := run(t, "token", "--grant-type", "authorization_code", "--code", "SplxlOBeZQQYbYS6WxSbIA")
	require.NoError(t, err)

	out, err := run(t, "token", "--grant-type", "refresh_token")
	require.ErrorIs(t, err, app.ErrResultInvalid)
	require.Contains(t, out, "refresh_token parameter is required for refresh_token grant")

	out, err = run(t, "token")
	require.ErrorIs(t, err, app.ErrResultInvalid)
	require.Contains(t, out, "grant_type parameter is required")
}

func TestFlow(t *testing.T) {
	t.Run("consistent", func(t *testing.T) {
		out, err := run(t, "flow", authorizeURL,
			"--code", "SplxlOBeZQQYbYS6WxSbIA",
			"--code-verifier", testVerifier,
			"--redirect-uri", "https://app.example.com/callback",
			"--expected-state", testState)
		require.NoError(t, err)
		require.Contains(t, out, "expected state:")
		require.Contains(t, out, "PASS")
	})

	t.Run("state check skipped", func(t *testing.T) {
		out, err := run(t, "flow", authorizeURL, "--code", "SplxlOBeZQQYbYS6WxSbIA", "--code-verifier", testVerifier)
		require.NoError(t, err)
		require.Contains(t, out, "state check skipped")
	})

	t.Run("missing verifier and wrong state", func(t *testing.T) {
		out, err := run(t, "flow", authorizeURL, "--code", "SplxlOBeZQQYbYS6WxSbIA", "--expected-state", "other-state-0123456789")
		require.ErrorIs(t, err, app.ErrResultInvalid)
		require.Contains(t, out, "state parameter mismatch")
		require.Contains(t, out, "code_verifier required when code_challenge was used")
	})
}

func TestAccessToken(t *testing.T) {
	out, err := run(t, "access-token", "Bearer 2YotnFZFEjr1zCsicMWpAA")
	require.NoError(t, err)
	require.Contains(t, out, "warning")

	_, err = run(t, "access-token", "short")
	require.ErrorIs(t, err, app.ErrResultInvalid)
}

func TestGenerators(t *testing.T) {
	out, err := run(t, "--json", "state")
	require.NoError(t, err)
	var state map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &state))
	require.Len(t, state["state"], 64)

	out, err = run(t, "--json", "pkce")
	require.NoError(t, err)
	var pair compliance.PKCEPair
	require.NoError(t, json.Unmarshal([]byte(out), &pair))
	require.Equal(t, oauth2.CodeMethodTypeS256, pair.CodeChallengeMethod)
	require.True(t, compliance.VerifyCodeChallenge(pair.CodeVerifier, pair.CodeChallenge, pair.CodeChallengeMethod))

	out, err = run(t, "pkce")
	require.NoError(t, err)
	require.Contains(t, out, "code_challenge_method: S256")
}
