package server

import "net/http"

func (s *Server) initRoutes() {
	s.RegisterRouteHandler("GET "+RouteHealth, ChainMiddleware(s.HealthHandler(), s.APIMiddleware()...))

	s.RegisterRouteHandler("POST "+RouteValidateAuthorize, ChainMiddleware(s.ValidateAuthorizeHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteValidateToken, ChainMiddleware(s.ValidateTokenHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteValidateFlow, ChainMiddleware(s.ValidateFlowHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteValidateRedirectURI, ChainMiddleware(s.ValidateRedirectURIHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteValidateScope, ChainMiddleware(s.ValidateScopeHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteValidateAccessToken, ChainMiddleware(s.ValidateAccessTokenHandler(), s.APIMiddleware()...))

	s.RegisterRouteHandler("GET "+RouteGenerateState, ChainMiddleware(s.GenerateStateHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteGeneratePKCE, ChainMiddleware(s.GeneratePKCEHandler(), s.APIMiddleware()...))

	s.RegisterRouteHandler("POST "+RouteToken, ChainMiddleware(s.TokenHandler(), s.APIMiddleware()...))

	// Preflight for every API route.
	s.RegisterRouteHandler("OPTIONS /", ChainMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, s.APIMiddleware()...))
}
