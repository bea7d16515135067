package matchers

import "regexp"

type formatMatcher struct {
	r *regexp.Regexp
}

func Format(format string) Matcher {
	return &formatMatcher{
		r: regexp.MustCompile(format),
	}
}

func (m *formatMatcher) Match(line string) (bool, int, int) {
	index := m.r.FindStringIndex(line)
	if index == nil {
		return false, 0, 0
	}

	return true, index[0], index[1]
}
