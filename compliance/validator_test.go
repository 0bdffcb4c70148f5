package compliance_test

import (
	"sync"
	"testing"

	"github.com/jrsteele09/go-oauth-compliance/compliance"
	"github.com/stretchr/testify/require"
)

func TestNewValidator(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := compliance.NewValidator().Config()
		require.Equal(t, compliance.DefaultConfig(), cfg)
		require.True(t, cfg.RequireHTTPSRedirectURI)
		require.ElementsMatch(t, []string{"https", "http"}, cfg.AllowedRedirectURISchemes)
		require.Zero(t, cfg.MaxScopeLength)
	})

	t.Run("options", func(t *testing.T) {
		cfg := compliance.NewValidator(
			compliance.WithRequireHTTPSRedirectURI(false),
			compliance.WithAllowedRedirectURISchemes("https"),
			compliance.WithMaxScopeLength(64),
		).Config()
		require.False(t, cfg.RequireHTTPSRedirectURI)
		require.Equal(t, []string{"https"}, cfg.AllowedRedirectURISchemes)
		require.Equal(t, 64, cfg.MaxScopeLength)
	})

	t.Run("negative scope length disables the limit", func(t *testing.T) {
		require.Zero(t, compliance.NewValidator(compliance.WithMaxScopeLength(-1)).Config().MaxScopeLength)
	})

	t.Run("config is copied in and out", func(t *testing.T) {
		schemes := []string{"https"}
		v := compliance.NewValidator(compliance.WithConfig(compliance.Config{
			RequireHTTPSRedirectURI:   true,
			AllowedRedirectURISchemes: schemes,
		}))
		schemes[0] = "ftp"
		require.Equal(t, []string{"https"}, v.Config().AllowedRedirectURISchemes)

		out := v.Config()
		out.AllowedRedirectURISchemes[0] = "gopher"
		require.True(t, v.ValidateRedirectURI("https://example.com/cb").Valid)
	})

	t.Run("instances are independent", func(t *testing.T) {
		strict := compliance.NewValidator()
		lax := compliance.NewValidator(compliance.WithRequireHTTPSRedirectURI(false))
		require.False(t, strict.ValidateRedirectURI("http://example.com/cb").Valid)
		require.True(t, lax.ValidateRedirectURI("http://example.com/cb").Valid)
	})
}

func TestValidator_ConcurrentUse(t *testing.T) {
	v := compliance.NewValidator()
	want := v.ValidateAuthorizationFlow(validAuthorizationRequest(), validTokenRequest(), nil)

	var wg sync.WaitGroup
	results := make([]*compliance.Result, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = v.ValidateAuthorizationFlow(validAuthorizationRequest(), validTokenRequest(), nil)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}
