package config

import "github.com/jrsteele09/go-oauth-compliance/compliance"

const (
	requireHTTPSEnvVar    = "REQUIRE_HTTPS_REDIRECT_URI"
	redirectSchemesEnvVar = "ALLOWED_REDIRECT_URI_SCHEMES"
	maxScopeLengthEnvVar  = "MAX_SCOPE_LENGTH"
)

type ComplianceConfig interface {
	GetRequireHTTPSRedirectURI() bool
	GetAllowedRedirectURISchemes() []string
	GetMaxScopeLength() int
	ValidatorOptions() []compliance.Option
}

type Compliance struct{}

var _ ComplianceConfig = Compliance{}

func (Compliance) GetRequireHTTPSRedirectURI() bool {
	return GetEnvBool(requireHTTPSEnvVar, true)
}

func (Compliance) GetAllowedRedirectURISchemes() []string {
	return GetEnvList(redirectSchemesEnvVar, []string{"https", "http"})
}

// GetMaxScopeLength returns 0 (unbounded) unless MAX_SCOPE_LENGTH is set.
func (Compliance) GetMaxScopeLength() int {
	return GetEnvInt(maxScopeLengthEnvVar, 0)
}

// ValidatorOptions turns the compliance settings into options for compliance.NewValidator.
func (c Compliance) ValidatorOptions() []compliance.Option {
	return []compliance.Option{
		compliance.WithRequireHTTPSRedirectURI(c.GetRequireHTTPSRedirectURI()),
		compliance.WithAllowedRedirectURISchemes(c.GetAllowedRedirectURISchemes()...),
		compliance.WithMaxScopeLength(c.GetMaxScopeLength()),
	}
}
