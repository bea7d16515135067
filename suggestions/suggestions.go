package suggestions

import (
	"unicode/utf8"

	"github.com/pivotal-cf/pass-alert/dictionary"
	"github.com/pivotal-cf/pass-alert/entropy"
	"github.com/pivotal-cf/pass-alert/leet"
	"github.com/pivotal-cf/pass-alert/patterns"
	"github.com/pivotal-cf/pass-alert/tables"
)

// RecommendedLength is the length below which a longer password is suggested.
const RecommendedLength = 12

const (
	IncreaseLength   = "Increase length to at least 12 characters."
	AddLowercase     = "Add lowercase letters."
	AddUppercase     = "Add uppercase letters."
	AddNumbers       = "Add numbers."
	AddSymbols       = "Include symbols to expand the character set."
	AvoidRepeats     = "Avoid repeated characters."
	BreakSequences   = "Break predictable sequences like 1234."
	AvoidKeyboard    = "Avoid keyboard patterns like qwerty."
	RemoveWords      = "Remove dictionary words or replace them with unique phrases."
	UniquePassphrase = "Start from a unique passphrase, not a known weak password."
)

// Findings is what the other analyzers found out about one password.
type Findings struct {
	Length         int
	Profile        entropy.Profile
	Patterns       []patterns.Match
	DictionaryHits []string
	Common         bool
}

type Builder struct {
	estimator  *entropy.Estimator
	detector   *patterns.Detector
	dictionary *dictionary.Matcher
}

func NewBuilder(t tables.Tables) *Builder {
	return &Builder{
		estimator:  entropy.NewEstimator(t.CommonSymbols, t.UncommonSymbols),
		detector:   patterns.NewDetector(t),
		dictionary: dictionary.NewMatcher(t.Words, leet.NewNormalizer(t.LeetRunes())),
	}
}

// Build analyzes password and returns the remediation advice for it.
func (b *Builder) Build(password string) []string {
	return Suggest(Findings{
		Length:         utf8.RuneCountInString(password),
		Profile:        b.estimator.Profile(password),
		Patterns:       b.detector.Detect(password),
		DictionaryHits: b.dictionary.Detect(password),
		Common:         b.dictionary.IsCommon(password),
	})
}

// Suggest turns findings into advice. Every check runs; the order of the
// result follows the order of the checks.
func Suggest(f Findings) []string {
	var out []string

	if f.Length < RecommendedLength {
		out = append(out, IncreaseLength)
	}

	if !f.Profile.Lower {
		out = append(out, AddLowercase)
	}

	if !f.Profile.Upper {
		out = append(out, AddUppercase)
	}

	if !f.Profile.Digit {
		out = append(out, AddNumbers)
	}

	if !f.Profile.HasSymbol() {
		out = append(out, AddSymbols)
	}

	if patterns.Has(f.Patterns, patterns.Repeat) {
		out = append(out, AvoidRepeats)
	}

	if patterns.Has(f.Patterns, patterns.Sequence) {
		out = append(out, BreakSequences)
	}

	if patterns.Has(f.Patterns, patterns.Keyboard) {
		out = append(out, AvoidKeyboard)
	}

	if len(f.DictionaryHits) > 0 {
		out = append(out, RemoveWords)
	}

	if f.Common {
		out = append(out, UniquePassphrase)
	}

	return Dedupe(out)
}

// Dedupe drops repeated strings, keeping the first occurrence of each.
func Dedupe(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	out := make([]string, 0, len(ss))

	for _, s := range ss {
		if seen[s] {
			continue
		}

		seen[s] = true
		out = append(out, s)
	}

	return out
}
