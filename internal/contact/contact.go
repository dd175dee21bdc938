// Package contact detects a phone-number-shaped contact string in raw
// text and derives a correlation token from it. The upstream behavior
// this reproduces called the same scan "email extraction"; the pattern
// has always matched phone numbers, so the names here say so.
package contact

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
)

// Optional 1-2 digit country code, 3-digit area code with optional
// parentheses, then 3 and 4 digit groups, separated by space, dot or dash.
var phoneRe = regexp.MustCompile(`(\+?\d{1,2}[\s.-]?)?\(?\d{3}\)?[\s.-]\d{3}[\s.-]\d{4}`)

// ExtractPhone returns the first phone-shaped substring in text, or ""
// when none is present.
func ExtractPhone(text string) string {
	return phoneRe.FindString(text)
}

// DeriveToken hashes version concatenated with the detected contact
// string. It returns "" when no contact string was found, which callers
// treat as "no token derivable".
func DeriveToken(version, contact string) string {
	if contact == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(version + contact))
	return hex.EncodeToString(sum[:])
}
