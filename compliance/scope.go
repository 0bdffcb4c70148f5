package compliance

import (
	"fmt"
	"strings"

	"github.com/jrsteele09/go-oauth-compliance/oauth2"
)

const (
	msgScopeDuplicates   = "scope contains duplicate values"
	msgScopeInvalidChars = "scope contains invalid characters"
)

// ValidateScope checks a space-delimited scope string.
func (v *Validator) ValidateScope(scope string) *Result {
	r := NewResult()

	tokens := strings.Fields(scope)
	seen := make(map[string]struct{}, len(tokens))
	duplicate, invalid := false, false
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			duplicate = true
		}
		seen[t] = struct{}{}
		if !isScopeToken(t) {
			invalid = true
		}
	}

	if duplicate {
		r.AddWarning(msgScopeDuplicates)
	}
	if invalid {
		r.AddWarning(msgScopeInvalidChars)
	}
	if v.cfg.MaxScopeLength > 0 && len(scope) > v.cfg.MaxScopeLength {
		r.AddError(oauth2.ErrorInvalidScope, fmt.Sprintf("scope exceeds maximum length of %d", v.cfg.MaxScopeLength))
	}

	return r
}

// isScopeToken implements scope-token = 1*NQCHAR, NQCHAR = %x21 / %x23-5B / %x5D-7E.
func isScopeToken(t string) bool {
	if t == "" {
		return false
	}
	for i := 0; i < len(t); i++ {
		c := t[i]
		if c < 0x21 || c > 0x7e || c == '"' || c == '\\' {
			return false
		}
	}
	return true
}
