package compliance

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
)

// stateBytes is the entropy of generated state and nonce values (256 bits, 64 hex chars).
const stateBytes = 32

// GenerateSecureState returns a random lower-case hex string for the OAuth state parameter.
func GenerateSecureState() string {
	b := make([]byte, stateBytes)
	// crypto/rand.Read never returns an error; it crashes the program if the OS source fails.
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// GenerateNonce returns a random value for the OpenID Connect nonce parameter.
func GenerateNonce() string {
	return GenerateSecureState()
}

// ValidateState reports whether candidate equals expected. Empty values never match.
// The comparison takes the same time wherever the first differing byte is.
func ValidateState(candidate, expected string) bool {
	if candidate == "" || expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(expected)) == 1
}
