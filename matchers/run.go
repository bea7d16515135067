package matchers

type runMatcher struct {
	min int
}

// Run matches the first stretch of at least min identical consecutive runes.
func Run(min int) Matcher {
	if min < 1 {
		min = 1
	}

	return &runMatcher{
		min: min,
	}
}

func (m *runMatcher) Match(line string) (bool, int, int) {
	var (
		prev   rune
		start  int
		length int
	)

	for i, r := range line {
		if length > 0 && r == prev {
			length++
		} else {
			if length >= m.min {
				return true, start, i
			}
			prev = r
			start = i
			length = 1
		}
	}

	if length >= m.min {
		return true, start, len(line)
	}

	return false, 0, 0
}
