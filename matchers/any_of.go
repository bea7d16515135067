package matchers

import (
	"strings"
	"unicode/utf8"
)

type anyOfMatcher struct {
	chars string
}

// AnyOf matches the first rune of the line that appears in chars.
func AnyOf(chars string) Matcher {
	return &anyOfMatcher{
		chars: chars,
	}
}

func (m *anyOfMatcher) Match(line string) (bool, int, int) {
	start := strings.IndexAny(line, m.chars)
	if start == -1 {
		return false, 0, 0
	}

	_, size := utf8.DecodeRuneInString(line[start:])

	return true, start, start + size
}
