// Package compliance checks OAuth 2.0 authorization and token requests (RFC 6749) and the
// PKCE extension (RFC 7636) for well-formedness, security and cross-request consistency.
//
// Every check returns a *Result instead of an error. All rules that apply are evaluated, so
// one call surfaces every violation. Validators are immutable once built and safe for
// concurrent use.
package compliance

import "strings"

// Config holds the policy knobs of a Validator.
type Config struct {
	// RequireHTTPSRedirectURI rejects http redirect URIs unless the host is localhost.
	RequireHTTPSRedirectURI bool

	// AllowedRedirectURISchemes is the set of schemes a redirect URI may use.
	AllowedRedirectURISchemes []string

	// MaxScopeLength bounds the raw scope string. Zero means unbounded.
	MaxScopeLength int
}

// DefaultConfig returns the default policy: HTTPS required, https and http schemes, no scope
// length limit.
func DefaultConfig() Config {
	return Config{
		RequireHTTPSRedirectURI:   true,
		AllowedRedirectURISchemes: []string{"https", "http"},
		MaxScopeLength:            0,
	}
}

// Option configures a Validator.
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
		c.AllowedRedirectURISchemes = append([]string(nil), cfg.AllowedRedirectURISchemes...)
	}
}

// WithRequireHTTPSRedirectURI toggles the HTTPS requirement for redirect URIs.
func WithRequireHTTPSRedirectURI(require bool) Option {
	return func(c *Config) {
		c.RequireHTTPSRedirectURI = require
	}
}

// WithAllowedRedirectURISchemes sets the schemes a redirect URI may use.
func WithAllowedRedirectURISchemes(schemes ...string) Option {
	return func(c *Config) {
		c.AllowedRedirectURISchemes = append([]string(nil), schemes...)
	}
}

// WithMaxScopeLength limits the raw scope string length. Zero or less disables the limit.
func WithMaxScopeLength(n int) Option {
	return func(c *Config) {
		c.MaxScopeLength = n
	}
}

// Validator runs the compliance rules under one Config.
type Validator struct {
	cfg     Config
	schemes map[string]struct{}
}

// NewValidator creates a Validator from DefaultConfig modified by opts.
func NewValidator(opts ...Option) *Validator {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxScopeLength < 0 {
		cfg.MaxScopeLength = 0
	}

	schemes := make(map[string]struct{}, len(cfg.AllowedRedirectURISchemes))
	for _, s := range cfg.AllowedRedirectURISchemes {
		schemes[strings.ToLower(s)] = struct{}{}
	}

	return &Validator{cfg: cfg, schemes: schemes}
}

// Config returns a copy of the validator's configuration.
func (v *Validator) Config() Config {
	cfg := v.cfg
	cfg.AllowedRedirectURISchemes = append([]string(nil), v.cfg.AllowedRedirectURISchemes...)
	return cfg
}

func (v *Validator) schemeAllowed(scheme string) bool {
	_, ok := v.schemes[scheme]
	return ok
}
