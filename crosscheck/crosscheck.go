// Package crosscheck gets a second opinion on a password from zxcvbn.
package crosscheck

import (
	"github.com/status-im/zxcvbn-go"
)

// MaxInputLength bounds the input handed to zxcvbn, whose matching cost
// grows quickly with length.
const MaxInputLength = 50

type Opinion struct {
	// Score is zxcvbn's 0-4 rating.
	Score     int     `json:"score"`
	Entropy   float64 `json:"entropy"`
	CrackTime string  `json:"crackTime"`
	Truncated bool    `json:"truncated,omitempty"`
}

// Evaluate runs zxcvbn over at most the first MaxInputLength characters of
// password. userInputs are words the password should not be built from,
// such as the account name.
func Evaluate(password string, userInputs ...string) Opinion {
	runes := []rune(password)

	truncated := false
	if len(runes) > MaxInputLength {
		password = string(runes[:MaxInputLength])
		truncated = true
	}

	match := zxcvbn.PasswordStrength(password, userInputs)

	return Opinion{
		Score:     match.Score,
		Entropy:   match.Entropy,
		CrackTime: match.CrackTimeDisplay,
		Truncated: truncated,
	}
}
