package matchers

import "strings"

type substringMatcher struct {
	s string
}

func Substring(s string) Matcher {
	return &substringMatcher{
		s: s,
	}
}

func (m *substringMatcher) Match(line string) (bool, int, int) {
	start := strings.Index(line, m.s)
	if start == -1 {
		return false, 0, 0
	}

	end := start + len(m.s)

	return true, start, end
}
