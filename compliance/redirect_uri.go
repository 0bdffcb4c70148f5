package compliance

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jrsteele09/go-oauth-compliance/oauth2"
)

const (
	msgRedirectURIInvalid  = "redirect_uri is not a valid URI"
	msgRedirectURIHTTPS    = "redirect_uri must use HTTPS except for localhost"
	msgRedirectURIHTTP     = "redirect_uri uses HTTP - HTTPS recommended for security"
	msgRedirectURIFragment = "redirect_uri must not contain fragment component"
)

// ValidateRedirectURI checks the structure and scheme of a redirect URI.
func (v *Validator) ValidateRedirectURI(uri string) *Result {
	r := NewResult()

	u, err := url.Parse(uri)
	if err != nil || !u.IsAbs() {
		// Without a scheme none of the remaining rules can be evaluated.
		r.AddError(oauth2.ErrorInvalidRequest, msgRedirectURIInvalid)
		return r
	}

	scheme := strings.ToLower(u.Scheme)
	if (scheme == "http" || scheme == "https") && u.Host == "" {
		r.AddError(oauth2.ErrorInvalidRequest, msgRedirectURIInvalid)
		return r
	}
	loopback := isLoopbackHost(u.Hostname())

	if !v.schemeAllowed(scheme) {
		r.AddError(oauth2.ErrorInvalidRequest, fmt.Sprintf("redirect_uri scheme %q is not allowed", scheme))
	}
	if v.cfg.RequireHTTPSRedirectURI && scheme == "http" && !loopback {
		r.AddError(oauth2.ErrorInvalidRequest, msgRedirectURIHTTPS)
	}
	if scheme == "http" && loopback {
		r.AddWarning(msgRedirectURIHTTP)
	}
	// An empty fragment ("cb#") still counts, so look at the raw string.
	if u.Fragment != "" || strings.Contains(uri, "#") {
		r.AddError(oauth2.ErrorInvalidRequest, msgRedirectURIFragment)
	}

	return r
}

// isLoopbackHost reports whether host names the local machine (RFC 8252 §7.3).
func isLoopbackHost(host string) bool {
	switch strings.ToLower(host) {
	case "localhost", "127.0.0.1", "::1":
		return true
	}
	return false
}
