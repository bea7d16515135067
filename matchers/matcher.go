package matchers

//go:generate counterfeiter . Matcher

// Matcher reports whether a string matches and, when it does, the byte
// offsets of the first match.
type Matcher interface {
	Match(string) (bool, int, int)
}
