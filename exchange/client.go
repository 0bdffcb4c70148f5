// Package exchange talks to a real identity provider on behalf of a flow orchestrator.
// Requests are checked by the compliance validator first and never leave the process when
// they carry errors.
package exchange

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jrsteele09/go-oauth-compliance/compliance"
	apperrors "github.com/jrsteele09/go-oauth-compliance/internal/errors"
	"github.com/jrsteele09/go-oauth-compliance/oauth2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	xoauth2 "golang.org/x/oauth2"
)

// Client authentication methods at the token endpoint.
const (
	AuthStyleAuto  = "auto"
	AuthStyleBasic = "basic"
	AuthStylePost  = "post"
)

// Config describes the OAuth client registered at the identity provider.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string

	AuthURL  string
	TokenURL string

	// AuthStyle is AuthStyleBasic, AuthStylePost or AuthStyleAuto (the default).
	AuthStyle string
}

// Client builds authorization URLs and exchanges grants for tokens.
type Client struct {
	oauth      *xoauth2.Config
	validator  *compliance.Validator
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithValidator sets the validator used before any request is sent.
func WithValidator(v *compliance.Validator) Option {
	return func(c *Client) {
		c.validator = v
	}
}

// WithHTTPClient sets the HTTP client used to reach the provider.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client for a provider whose endpoints are already known.
func New(cfg Config, options ...Option) (*Client, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("[exchange.New] client id is required")
	}
	if cfg.AuthURL == "" || cfg.TokenURL == "" {
		return nil, errors.New("[exchange.New] authorization and token endpoints are required")
	}
	style, err := parseAuthStyle(cfg.AuthStyle)
	if err != nil {
		return nil, errors.Wrap(err, "[exchange.New]")
	}

	c := &Client{
		oauth: &xoauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: xoauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: style,
			},
		},
		validator:  compliance.NewValidator(),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// NewAuthorizationRequest returns an authorization request for this client with a fresh
// state, nonce and S256 PKCE pair. The caller keeps the pair's verifier for the token leg.
func (c *Client) NewAuthorizationRequest() (*oauth2.AuthorizationRequest, *compliance.PKCEPair, error) {
	pair, err := compliance.GeneratePKCECodes()
	if err != nil {
		return nil, nil, errors.Wrap(err, "[NewAuthorizationRequest]")
	}
	req := &oauth2.AuthorizationRequest{
		ResponseType:        oauth2.CodeResponseType,
		ClientID:            c.oauth.ClientID,
		RedirectURI:         c.oauth.RedirectURL,
		Scope:               strings.Join(c.oauth.Scopes, " "),
		State:               compliance.GenerateSecureState(),
		CodeChallenge:       pair.CodeChallenge,
		CodeChallengeMethod: pair.CodeChallengeMethod,
		Nonce:               compliance.GenerateNonce(),
	}
	return req, pair, nil
}

// AuthCodeURL validates req and returns the provider URL to redirect the user agent to.
func (c *Client) AuthCodeURL(req *oauth2.AuthorizationRequest) (string, error) {
	result := c.validator.ValidateAuthorizationRequest(req)
	if !result.Valid {
		return "", &ValidationError{Result: result, State: stateOf(req)}
	}
	if req.ClientID != c.oauth.ClientID {
		return "", apperrors.Wrapf(apperrors.ErrInvalidRequest, "[AuthCodeURL] client_id %q is not this client", req.ClientID)
	}
	logWarnings("authorization request", result)

	// Only the validated request's values reach the provider.
	cfg := *c.oauth
	cfg.Scopes = nil
	cfg.RedirectURL = ""

	var opts []xoauth2.AuthCodeOption
	for key, values := range req.Values() {
		switch key {
		case oauth2.ParamState, oauth2.ParamClientID, oauth2.ParamResponseType:
			// AuthCodeURL sets these itself.
			continue
		}
		opts = append(opts, xoauth2.SetAuthURLParam(key, values[0]))
	}
	return cfg.AuthCodeURL(req.State, opts...), nil
}

// Exchange checks both legs of the flow and, when they are consistent, redeems the
// authorization code at the token endpoint.
func (c *Client) Exchange(ctx context.Context, authReq *oauth2.AuthorizationRequest, tokenReq *oauth2.TokenRequest, expectedState *string) (*oauth2.TokenResponse, error) {
	result := c.validator.ValidateAuthorizationFlow(authReq, tokenReq, expectedState)
	if !result.Valid {
		return nil, &ValidationError{Result: result, State: stateOf(authReq)}
	}
	if tokenReq.GrantType != oauth2.AuthorizationCodeGrant {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidRequest, "[Exchange] grant type %q cannot redeem a code", tokenReq.GrantType)
	}
	logWarnings("authorization flow", result)

	var opts []xoauth2.AuthCodeOption
	if tokenReq.CodeVerifier != "" {
		opts = append(opts, xoauth2.VerifierOption(tokenReq.CodeVerifier))
	}
	if tokenReq.RedirectURI != "" {
		opts = append(opts, xoauth2.SetAuthURLParam(oauth2.ParamRedirectURI, tokenReq.RedirectURI))
	}

	tok, err := c.oauth.Exchange(c.withHTTPClient(ctx), tokenReq.Code, opts...)
	if err != nil {
		log.Err(err).Str("client_id", c.oauth.ClientID).Msg("Token exchange failed")
		return nil, fmt.Errorf("[Exchange] %w: %w", apperrors.ErrTokenExchange, err)
	}
	return toTokenResponse(tok), nil
}

// Refresh validates a refresh_token grant and redeems it.
func (c *Client) Refresh(ctx context.Context, tokenReq *oauth2.TokenRequest) (*oauth2.TokenResponse, error) {
	result := c.validator.ValidateTokenRequest(tokenReq)
	if !result.Valid {
		return nil, &ValidationError{Result: result}
	}
	if tokenReq.GrantType != oauth2.RefreshTokenGrant {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidRequest, "[Refresh] grant type %q is not refresh_token", tokenReq.GrantType)
	}

	// A token without an access token is never valid, so the source refreshes immediately.
	src := c.oauth.TokenSource(c.withHTTPClient(ctx), &xoauth2.Token{RefreshToken: tokenReq.RefreshToken})
	tok, err := src.Token()
	if err != nil {
		log.Err(err).Str("client_id", c.oauth.ClientID).Msg("Token refresh failed")
		return nil, fmt.Errorf("[Refresh] %w: %w", apperrors.ErrTokenExchange, err)
	}
	return toTokenResponse(tok), nil
}

func (c *Client) withHTTPClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, xoauth2.HTTPClient, c.httpClient)
}

func parseAuthStyle(style string) (xoauth2.AuthStyle, error) {
	switch strings.ToLower(style) {
	case "", AuthStyleAuto:
		return xoauth2.AuthStyleAutoDetect, nil
	case AuthStyleBasic:
		return xoauth2.AuthStyleInHeader, nil
	case AuthStylePost:
		return xoauth2.AuthStyleInParams, nil
	}
	return xoauth2.AuthStyleAutoDetect, errors.Errorf("unknown auth style %q", style)
}

func toTokenResponse(tok *xoauth2.Token) *oauth2.TokenResponse {
	resp := &oauth2.TokenResponse{
		AccessToken:  tok.AccessToken,
		TokenType:    tok.Type(),
		RefreshToken: tok.RefreshToken,
	}
	if !tok.Expiry.IsZero() {
		if secs := int64(time.Until(tok.Expiry).Round(time.Second).Seconds()); secs > 0 {
			resp.ExpiresIn = secs
		}
	}
	if idToken, ok := tok.Extra("id_token").(string); ok {
		resp.IDToken = idToken
	}
	if scope, ok := tok.Extra("scope").(string); ok {
		resp.Scope = scope
	}
	return resp
}

func logWarnings(what string, result *compliance.Result) {
	if result.HasWarnings() {
		log.Warn().Strs("warnings", result.Warnings).Msgf("Proceeding with %s despite warnings", what)
	}
}

func stateOf(req *oauth2.AuthorizationRequest) string {
	if req == nil {
		return ""
	}
	return req.State
}
