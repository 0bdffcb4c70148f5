package compliance_test

import (
	"strings"
	"testing"

	"github.com/jrsteele09/go-oauth-compliance/compliance"
	"github.com/jrsteele09/go-oauth-compliance/oauth2"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidatePKCEParameters(t *testing.T) {
	v := compliance.NewValidator()

	t.Run("no challenge is valid", func(t *testing.T) {
		r := v.ValidatePKCEParameters(&oauth2.AuthorizationRequest{})
		require.True(t, r.Valid)
		require.Empty(t, r.Warnings)
	})

	t.Run("nil request is valid", func(t *testing.T) {
		require.True(t, v.ValidatePKCEParameters(nil).Valid)
	})

	t.Run("valid S256", func(t *testing.T) {
		r := v.ValidatePKCEParameters(&oauth2.AuthorizationRequest{
			CodeChallenge:       testCodeChallenge,
			CodeChallengeMethod: oauth2.CodeMethodTypeS256,
		})
		require.True(t, r.Valid)
		require.Empty(t, r.Warnings)
	})

	t.Run("plain warns", func(t *testing.T) {
		r := v.ValidatePKCEParameters(&oauth2.AuthorizationRequest{
			CodeChallenge:       testCodeVerifier,
			CodeChallengeMethod: oauth2.CodeMethodTypePlain,
		})
		require.True(t, r.Valid)
		require.Equal(t, []string{`code_challenge_method "plain" is less secure - consider using "S256"`}, r.Warnings)
	})

	t.Run("invalid method", func(t *testing.T) {
		for _, method := range []string{"invalid", "s256", "PLAIN", ""} {
			r := v.ValidatePKCEParameters(&oauth2.AuthorizationRequest{
				CodeChallenge:       testCodeChallenge,
				CodeChallengeMethod: oauth2.CodeMethodType(method),
			})
			require.False(t, r.Valid, method)
			require.Equal(t, []string{`code_challenge_method must be "plain" or "S256"`}, r.Errors, method)
			require.Equal(t, []oauth2.ErrorCode{oauth2.ErrorInvalidRequest}, r.Codes(), method)
		}
	})

	t.Run("short challenge warns", func(t *testing.T) {
		r := v.ValidatePKCEParameters(&oauth2.AuthorizationRequest{
			CodeChallenge:       "tooshort",
			CodeChallengeMethod: oauth2.CodeMethodTypeS256,
		})
		require.True(t, r.Valid)
		require.Empty(t, r.Errors)
		require.Equal(t, []string{"code_challenge length must be 43-128 characters"}, r.Warnings)
	})

	t.Run("challenge with invalid characters warns", func(t *testing.T) {
		r := v.ValidatePKCEParameters(&oauth2.AuthorizationRequest{
			CodeChallenge:       strings.Repeat("a", 42) + "=",
			CodeChallengeMethod: oauth2.CodeMethodTypeS256,
		})
		require.True(t, r.Valid)
		require.Equal(t, []string{"code_challenge contains invalid characters"}, r.Warnings)
	})

	t.Run("only the method is an error", func(t *testing.T) {
		r := v.ValidatePKCEParameters(&oauth2.AuthorizationRequest{
			CodeChallenge:       "bad+value",
			CodeChallengeMethod: "MD5",
		})
		require.False(t, r.Valid)
		require.Equal(t, []string{`code_challenge_method must be "plain" or "S256"`}, r.Errors)
		require.Equal(t, []string{
			"code_challenge length must be 43-128 characters",
			"code_challenge contains invalid characters",
		}, r.Warnings)
	})
}

func TestValidator_ValidateCodeVerifier(t *testing.T) {
	v := compliance.NewValidator()

	tests := []struct {
		name     string
		verifier string
		errors   []string
	}{
		{name: "rfc example", verifier: testCodeVerifier},
		{name: "minimum length", verifier: strings.Repeat("a", 43)},
		{name: "maximum length", verifier: strings.Repeat("a", 128)},
		{name: "every unreserved character", verifier: "ABCXYZabcxyz0189-._~" + strings.Repeat("q", 23)},
		{name: "too short", verifier: strings.Repeat("a", 42), errors: []string{"code_verifier length must be 43-128 characters"}},
		{name: "too long", verifier: strings.Repeat("a", 129), errors: []string{"code_verifier length must be 43-128 characters"}},
		{name: "empty", verifier: "", errors: []string{"code_verifier length must be 43-128 characters"}},
		{name: "space", verifier: strings.Repeat("a", 42) + " ", errors: []string{"code_verifier contains invalid characters"}},
		{name: "plus sign", verifier: strings.Repeat("a", 42) + "+", errors: []string{"code_verifier contains invalid characters"}},
		{name: "slash", verifier: strings.Repeat("a", 42) + "/", errors: []string{"code_verifier contains invalid characters"}},
		{
			name:     "short and invalid",
			verifier: "abc$",
			errors: []string{
				"code_verifier length must be 43-128 characters",
				"code_verifier contains invalid characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := v.ValidateCodeVerifier(tt.verifier)
			if tt.errors == nil {
				require.True(t, r.Valid)
				require.Empty(t, r.Errors)
				return
			}
			require.False(t, r.Valid)
			require.Equal(t, tt.errors, r.Errors)
		})
	}
}

func TestGeneratePKCECodes(t *testing.T) {
	v := compliance.NewValidator()

	for i := 0; i < 20; i++ {
		pair, err := compliance.GeneratePKCECodes()
		require.NoError(t, err)
		require.Equal(t, oauth2.CodeMethodTypeS256, pair.CodeChallengeMethod)

		require.True(t, v.ValidateCodeVerifier(pair.CodeVerifier).Valid)

		req := validAuthorizationRequest()
		req.CodeChallenge = pair.CodeChallenge
		req.CodeChallengeMethod = pair.CodeChallengeMethod
		r := v.ValidateAuthorizationRequest(req)
		require.True(t, r.Valid)
		require.Empty(t, r.Warnings)

		require.True(t, compliance.VerifyCodeChallenge(pair.CodeVerifier, pair.CodeChallenge, pair.CodeChallengeMethod))
		require.NotContains(t, pair.CodeChallenge, "=")
	}

	a, err := compliance.GeneratePKCECodes()
	require.NoError(t, err)
	b, err := compliance.GeneratePKCECodes()
	require.NoError(t, err)
	require.NotEqual(t, a.CodeVerifier, b.CodeVerifier)
}

func TestVerifyCodeChallenge(t *testing.T) {
	t.Run("rfc 7636 appendix b", func(t *testing.T) {
		require.True(t, compliance.VerifyCodeChallenge(testCodeVerifier, testCodeChallenge, oauth2.CodeMethodTypeS256))
	})

	t.Run("plain", func(t *testing.T) {
		require.True(t, compliance.VerifyCodeChallenge(testCodeVerifier, testCodeVerifier, oauth2.CodeMethodTypePlain))
		require.False(t, compliance.VerifyCodeChallenge(testCodeVerifier, testCodeChallenge, oauth2.CodeMethodTypePlain))
	})

	t.Run("wrong verifier", func(t *testing.T) {
		require.False(t, compliance.VerifyCodeChallenge(strings.Repeat("a", 43), testCodeChallenge, oauth2.CodeMethodTypeS256))
	})

	t.Run("unknown method", func(t *testing.T) {
		require.False(t, compliance.VerifyCodeChallenge(testCodeVerifier, testCodeChallenge, "MD5"))
	})

	t.Run("empty values", func(t *testing.T) {
		require.False(t, compliance.VerifyCodeChallenge("", "", oauth2.CodeMethodTypePlain))
	})
}
