package leet

import (
	"strings"
	"unicode"
)

// Normalizer folds common leet-speak substitutions back to letters.
type Normalizer struct {
	substitutions map[rune]rune
}

func NewNormalizer(substitutions map[rune]rune) *Normalizer {
	copied := make(map[rune]rune, len(substitutions))
	for from, to := range substitutions {
		copied[from] = to
	}

	return &Normalizer{
		substitutions: copied,
	}
}

// Normalize lowercases s and replaces every substituted character with the
// letter it stands for.
func (n *Normalizer) Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if to, ok := n.substitutions[r]; ok {
			b.WriteRune(unicode.ToLower(to))
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}
