package matchers

// Whole only accepts a submatch that spans the entire line.
func Whole(submatcher Matcher) Matcher {
	return &whole{
		matcher: submatcher,
	}
}

type whole struct {
	matcher Matcher
}

func (w *whole) Match(line string) (bool, int, int) {
	match, start, end := w.matcher.Match(line)
	if !match || start != 0 || end != len(line) {
		return false, 0, 0
	}

	return true, start, end
}
