// pkg/qrtoken/qrtoken.go
package qrtoken

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

// Length is the rendered token length in hex characters (16 random bytes).
const Length = 32

var pattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

// New returns a fresh QR token: 16 cryptographically secure random bytes
// rendered as 32 lowercase hex characters. Uniqueness is enforced by the
// unique constraint on the owning table; at 128 bits of entropy no retry
// logic is needed.
func New() string {
	bytes := make([]byte, Length/2)
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand failing means the platform's entropy source is gone;
		// nothing sensible can continue from here.
		panic("qrtoken: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(bytes)
}

// Valid reports whether s has the shape of a QR token.
func Valid(s string) bool {
	return pattern.MatchString(s)
}
