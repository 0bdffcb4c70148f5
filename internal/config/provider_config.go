package config

import "strings"

const (
	issuerURLEnvVar    = "OIDC_ISSUER_URL"
	clientIDEnvVar     = "OAUTH_CLIENT_ID"
	clientSecretEnvVar = "OAUTH_CLIENT_SECRET"
	redirectURLEnvVar  = "OAUTH_REDIRECT_URL"
	authStyleEnvVar    = "OAUTH_AUTH_STYLE"
	scopesEnvVar       = "OAUTH_SCOPES"
)

// ProviderConfig describes the identity provider the token exchange proxy forwards to.
type ProviderConfig interface {
	GetIssuerURL() string
	GetClientID() string
	GetClientSecret() string
	GetRedirectURL() string
	GetAuthStyle() string
	GetScopes() []string
	ProviderEnabled() bool
}

type Provider struct{}

var _ ProviderConfig = Provider{}

func (Provider) GetIssuerURL() string {
	return strings.TrimSuffix(GetEnv(issuerURLEnvVar, ""), "/")
}

func (Provider) GetClientID() string {
	return GetEnv(clientIDEnvVar, "")
}

// GetClientSecret is empty for public clients.
func (Provider) GetClientSecret() string {
	return GetEnv(clientSecretEnvVar, "")
}

func (Provider) GetRedirectURL() string {
	return GetEnv(redirectURLEnvVar, "")
}

// GetAuthStyle is how the client authenticates at the token endpoint:
// "basic" (HTTP Basic), "post" (client_secret in the body) or "auto".
func (Provider) GetAuthStyle() string {
	return strings.ToLower(GetEnv(authStyleEnvVar, "auto"))
}

func (Provider) GetScopes() []string {
	return GetEnvList(scopesEnvVar, []string{"openid"})
}

// ProviderEnabled reports whether enough is configured to run the token exchange proxy.
func (p Provider) ProviderEnabled() bool {
	return p.GetIssuerURL() != "" && p.GetClientID() != ""
}
