package matchers

import "strings"

// Multi returns the result of the first matcher that matches.
func Multi(matchers ...Matcher) Matcher {
	return &multi{
		matchers: matchers,
	}
}

type multi struct {
	matchers []Matcher
}

func (m *multi) Match(line string) (bool, int, int) {
	for _, matcher := range m.matchers {
		if match, start, end := matcher.Match(line); match {
			return true, start, end
		}
	}

	return false, 0, 0
}

// LowercasedMulti is Multi over the lowercased line. Offsets refer to the
// lowercased line.
func LowercasedMulti(matchers ...Matcher) Matcher {
	return &lowercasedMulti{
		multi: multi{matchers: matchers},
	}
}

type lowercasedMulti struct {
	multi
}

func (m *lowercasedMulti) Match(line string) (bool, int, int) {
	return m.multi.Match(strings.ToLower(line))
}
