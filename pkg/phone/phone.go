// pkg/phone/phone.go
package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used to parse numbers given in national format.
const DefaultRegion = "ES"

// MaxLenE164 is the longest E.164 string we store (+ sign plus 15 digits).
const MaxLenE164 = 16

// Normalize parses a phone number (national or international format) and
// returns its E.164 representation. Empty input stays empty so optional
// phone columns can pass through untouched.
func Normalize(raw string) (string, error) {
	return NormalizeRegion(raw, DefaultRegion)
}

// NormalizeRegion is Normalize with an explicit default region.
func NormalizeRegion(raw, region string) (string, error) {
	if raw == "" {
		return "", nil
	}
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", fmt.Errorf("telefono %q: %w", raw, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("telefono %q: numero no valido", raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
