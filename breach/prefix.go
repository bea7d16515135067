package breach

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

const PrefixLength = 5

// Prefix hashes password and splits the uppercase hex digest into the part
// that is sent to the range API and the part that never leaves the process.
func Prefix(password string) (prefix, suffix string) {
	sum := sha1.Sum([]byte(password))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))

	return digest[:PrefixLength], digest[PrefixLength:]
}

// ValidPrefix reports whether s is exactly five hex characters.
func ValidPrefix(s string) bool {
	if len(s) != PrefixLength {
		return false
	}

	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}

	return true
}
