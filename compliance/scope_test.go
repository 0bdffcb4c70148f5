package compliance_test

import (
	"strings"
	"testing"

	"github.com/jrsteele09/go-oauth-compliance/compliance"
	"github.com/jrsteele09/go-oauth-compliance/oauth2"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidateScope(t *testing.T) {
	v := compliance.NewValidator()

	t.Run("valid scope", func(t *testing.T) {
		r := v.ValidateScope(testScope)
		require.True(t, r.Valid)
		require.Empty(t, r.Errors)
		require.Empty(t, r.Warnings)
	})

	t.Run("extra whitespace is fine", func(t *testing.T) {
		r := v.ValidateScope("  openid\tprofile  ")
		require.True(t, r.Valid)
		require.Empty(t, r.Warnings)
	})

	t.Run("duplicates warn once", func(t *testing.T) {
		r := v.ValidateScope("openid profile openid profile")
		require.True(t, r.Valid)
		require.Equal(t, []string{"scope contains duplicate values"}, r.Warnings)
	})

	t.Run("invalid characters warn", func(t *testing.T) {
		r := v.ValidateScope(`openid "profile"`)
		require.True(t, r.Valid)
		require.Empty(t, r.Errors)
		require.Equal(t, []string{"scope contains invalid characters"}, r.Warnings)
	})

	t.Run("non ascii token warns", func(t *testing.T) {
		r := v.ValidateScope("openid profilé read:user")
		require.True(t, r.Valid)
		require.Equal(t, []string{"scope contains invalid characters"}, r.Warnings)
	})

	t.Run("invalid characters and duplicates", func(t *testing.T) {
		r := v.ValidateScope("openid openid pro\\file")
		require.True(t, r.Valid)
		require.Equal(t, []string{"scope contains duplicate values", "scope contains invalid characters"}, r.Warnings)
	})

	t.Run("unbounded by default", func(t *testing.T) {
		r := v.ValidateScope(strings.Repeat("a", 5000))
		require.True(t, r.Valid)
	})
}

func TestValidator_ValidateScope_MaxLength(t *testing.T) {
	v := compliance.NewValidator(compliance.WithMaxScopeLength(20))

	t.Run("at limit", func(t *testing.T) {
		r := v.ValidateScope(strings.Repeat("a", 20))
		require.True(t, r.Valid)
	})

	t.Run("over limit", func(t *testing.T) {
		r := v.ValidateScope("openid profile email address")
		require.False(t, r.Valid)
		require.Equal(t, []string{"scope exceeds maximum length of 20"}, r.Errors)
		require.Equal(t, []oauth2.ErrorCode{oauth2.ErrorInvalidScope}, r.Codes())
	})

	t.Run("over limit with duplicates", func(t *testing.T) {
		r := v.ValidateScope("openid openid openid openid")
		require.False(t, r.Valid)
		require.Equal(t, []string{"scope exceeds maximum length of 20"}, r.Errors)
		require.Equal(t, []string{"scope contains duplicate values"}, r.Warnings)
	})
}
