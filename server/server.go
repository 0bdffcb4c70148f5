package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-oauth-compliance/compliance"
	"github.com/jrsteele09/go-oauth-compliance/internal/config"
	"github.com/jrsteele09/go-oauth-compliance/oauth2"
	"github.com/rs/zerolog/log"
)

// TokenExchanger redeems grants at an identity provider. *exchange.Client implements it.
type TokenExchanger interface {
	Exchange(ctx context.Context, authReq *oauth2.AuthorizationRequest, tokenReq *oauth2.TokenRequest, expectedState *string) (*oauth2.TokenResponse, error)
	Refresh(ctx context.Context, tokenReq *oauth2.TokenRequest) (*oauth2.TokenResponse, error)
}

type Server struct {
	mux       *http.ServeMux
	routes    []string
	config    config.Config
	validator *compliance.Validator
	exchanger TokenExchanger
}

type Option func(*Server)

// WithExchanger enables the token proxy endpoint.
func WithExchanger(e TokenExchanger) Option {
	return func(s *Server) {
		s.exchanger = e
	}
}

// WithValidator replaces the validator built from the compliance config.
func WithValidator(v *compliance.Validator) Option {
	return func(s *Server) {
		s.validator = v
	}
}

func New(config config.Config, options ...Option) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		config: config,
	}
	for _, opt := range options {
		opt(s)
	}
	if s.validator == nil {
		s.validator = compliance.NewValidator(config.ValidatorOptions()...)
	}

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) logRoutes() {
	if !s.config.IsDev() {
		return
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	paddedMethod := fmt.Sprintf(" %-7s", method)
	log.Debug().Msgf("[%s] %s", methodColor(method).Sprint(paddedMethod), path)
}
