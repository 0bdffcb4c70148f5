package compliance

import "net/http"

// securityHeaders is the fixed header set for any response that carries tokens or
// authorization parameters. no-store/no-cache follow RFC 6749 §5.1.
var securityHeaders = map[string]string{
	"Cache-Control":          "no-store",
	"Pragma":                 "no-cache",
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "DENY",
	"Referrer-Policy":        "no-referrer",
	"X-XSS-Protection":       "1; mode=block",
}

// SecurityHeaders returns a copy of the fixed security header set.
func SecurityHeaders() map[string]string {
	headers := make(map[string]string, len(securityHeaders))
	for k, v := range securityHeaders {
		headers[k] = v
	}
	return headers
}

// ApplySecurityHeaders sets the security header set on h, replacing existing values.
func ApplySecurityHeaders(h http.Header) {
	for k, v := range securityHeaders {
		h.Set(k, v)
	}
}
