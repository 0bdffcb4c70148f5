package server

// Route path constants
const (
	RouteHealth = "/healthz"

	// Validation API
	RouteValidateAuthorize   = "/v1/validate/authorize"
	RouteValidateToken       = "/v1/validate/token"
	RouteValidateFlow        = "/v1/validate/flow"
	RouteValidateRedirectURI = "/v1/validate/redirect-uri"
	RouteValidateScope       = "/v1/validate/scope"
	RouteValidateAccessToken = "/v1/validate/access-token"

	// Generators
	RouteGenerateState = "/v1/generate/state"
	RouteGeneratePKCE  = "/v1/generate/pkce"

	// Token exchange proxy
	RouteToken = "/v1/token"
)
